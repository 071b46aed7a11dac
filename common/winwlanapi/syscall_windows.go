//go:build windows

package winwlanapi

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go syscall_windows.go

// https://learn.microsoft.com/en-us/windows/win32/api/wlanapi/nf-wlanapi-wlanopenhandle
//sys wlanOpenHandle(clientVersion uint32, reserved uintptr, negotiatedVersion *uint32, clientHandle *windows.Handle) (ret uint32) = wlanapi.WlanOpenHandle

// https://learn.microsoft.com/en-us/windows/win32/api/wlanapi/nf-wlanapi-wlanclosehandle
//sys wlanCloseHandle(clientHandle windows.Handle, reserved uintptr) (ret uint32) = wlanapi.WlanCloseHandle

// https://learn.microsoft.com/en-us/windows/win32/api/wlanapi/nf-wlanapi-wlanenuminterfaces
//sys wlanEnumInterfaces(clientHandle windows.Handle, reserved uintptr, interfaceList **InterfaceInfoList) (ret uint32) = wlanapi.WlanEnumInterfaces

// https://learn.microsoft.com/en-us/windows/win32/api/wlanapi/nf-wlanapi-wlanqueryinterface
//sys wlanQueryInterface(clientHandle windows.Handle, interfaceGuid *windows.GUID, opCode uint32, reserved uintptr, dataSize *uint32, data *uintptr, opcodeValueType *uint32) (ret uint32) = wlanapi.WlanQueryInterface

// https://learn.microsoft.com/en-us/windows/win32/api/wlanapi/nf-wlanapi-wlanfreememory
//sys wlanFreeMemory(memory uintptr) = wlanapi.WlanFreeMemory

// https://learn.microsoft.com/en-us/windows/win32/api/wlanapi/nf-wlanapi-wlanregisternotification
//sys wlanRegisterNotification(clientHandle windows.Handle, notificationSource uint32, ignoreDuplicate bool, callback uintptr, callbackContext uintptr, reserved uintptr, prevNotificationSource *uint32) (ret uint32) = wlanapi.WlanRegisterNotification

// https://learn.microsoft.com/en-us/windows/win32/api/wlanapi/nf-wlanapi-wlanscan
//sys wlanScan(clientHandle windows.Handle, interfaceGuid *windows.GUID, ssid *Dot11SSID, ieData uintptr, reserved uintptr) (ret uint32) = wlanapi.WlanScan

// https://learn.microsoft.com/en-us/windows/win32/api/wlanapi/nf-wlanapi-wlangetavailablenetworklist
//sys wlanGetAvailableNetworkList(clientHandle windows.Handle, interfaceGuid *windows.GUID, flags uint32, reserved uintptr, networkList **AvailableNetworkList) (ret uint32) = wlanapi.WlanGetAvailableNetworkList

// https://learn.microsoft.com/en-us/windows/win32/api/wlanapi/nf-wlanapi-wlanconnect
//sys wlanConnect(clientHandle windows.Handle, interfaceGuid *windows.GUID, parameters *ConnectionParameters, reserved uintptr) (ret uint32) = wlanapi.WlanConnect

// https://learn.microsoft.com/en-us/windows/win32/api/wlanapi/nf-wlanapi-wlandisconnect
//sys wlanDisconnect(clientHandle windows.Handle, interfaceGuid *windows.GUID, reserved uintptr) (ret uint32) = wlanapi.WlanDisconnect

// https://learn.microsoft.com/en-us/windows/win32/api/wlanapi/nf-wlanapi-wlansetprofile
//sys wlanSetProfile(clientHandle windows.Handle, interfaceGuid *windows.GUID, flags uint32, profileXml *uint16, allUserProfileSecurity *uint16, overwrite bool, reserved uintptr, reasonCode *uint32) (ret uint32) = wlanapi.WlanSetProfile

// https://learn.microsoft.com/en-us/windows/win32/api/wlanapi/nf-wlanapi-wlangetprofile
//sys wlanGetProfile(clientHandle windows.Handle, interfaceGuid *windows.GUID, profileName *uint16, reserved uintptr, profileXml **uint16, flags *uint32, grantedAccess *uint32) (ret uint32) = wlanapi.WlanGetProfile

// https://learn.microsoft.com/en-us/windows/win32/api/wlanapi/nf-wlanapi-wlangetprofilelist
//sys wlanGetProfileList(clientHandle windows.Handle, interfaceGuid *windows.GUID, reserved uintptr, profileList **ProfileInfoList) (ret uint32) = wlanapi.WlanGetProfileList

// https://learn.microsoft.com/en-us/windows/win32/api/wlanapi/nf-wlanapi-wlandeleteprofile
//sys wlanDeleteProfile(clientHandle windows.Handle, interfaceGuid *windows.GUID, profileName *uint16, reserved uintptr) (ret uint32) = wlanapi.WlanDeleteProfile

// https://learn.microsoft.com/en-us/windows/win32/api/wlanapi/nf-wlanapi-wlanreasoncodetostring
//sys wlanReasonCodeToString(reasonCode uint32, bufferSize uint32, stringBuffer *uint16, reserved uintptr) (ret uint32) = wlanapi.WlanReasonCodeToString
