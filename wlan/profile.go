package wlan

import (
	"encoding/hex"
	"encoding/xml"
	"strings"

	E "github.com/sagernet/sing-wlan/common/exceptions"
)

const (
	ProfileNamespace = "http://www.microsoft.com/networking/WLAN/profile/v1"

	ConnectionModeManual = "manual"
	ConnectionModeAuto   = "auto"

	// AutoConnectMarker appears in stored documents of profiles the OS
	// connects automatically.
	AutoConnectMarker = "<connectionMode>auto</connectionMode>"
)

type Profile struct {
	Name           string
	SSID           string
	Passphrase     string
	Security       SecurityKind
	Encryption     EncryptionKind
	ConnectionMode string
	AutoSwitch     bool
	NonBroadcast   bool
}

// NewProfile returns a manual, broadcast, infrastructure profile named after
// the SSID.
func NewProfile(ssid string, passphrase string, encryption EncryptionKind, security SecurityKind) Profile {
	return Profile{
		Name:           ssid,
		SSID:           ssid,
		Passphrase:     passphrase,
		Security:       security,
		Encryption:     encryption,
		ConnectionMode: ConnectionModeManual,
	}
}

type profileDocument struct {
	XMLName        xml.Name          `xml:"http://www.microsoft.com/networking/WLAN/profile/v1 WLANProfile"`
	Name           string            `xml:"name"`
	SSIDConfig     profileSSIDConfig `xml:"SSIDConfig"`
	ConnectionType string            `xml:"connectionType"`
	ConnectionMode string            `xml:"connectionMode"`
	AutoSwitch     bool              `xml:"autoSwitch"`
	MSM            profileMSM        `xml:"MSM"`
}

type profileSSIDConfig struct {
	SSID         profileSSID `xml:"SSID"`
	NonBroadcast bool        `xml:"nonBroadcast"`
}

type profileSSID struct {
	Hex  string `xml:"hex"`
	Name string `xml:"name"`
}

type profileMSM struct {
	Security profileSecurity `xml:"security"`
}

type profileSecurity struct {
	AuthEncryption profileAuthEncryption `xml:"authEncryption"`
	SharedKey      *profileSharedKey     `xml:"sharedKey,omitempty"`
}

type profileAuthEncryption struct {
	Authentication string `xml:"authentication"`
	Encryption     string `xml:"encryption"`
	UseOneX        bool   `xml:"useOneX"`
}

type profileSharedKey struct {
	KeyType     string `xml:"keyType"`
	Protected   bool   `xml:"protected"`
	KeyMaterial string `xml:"keyMaterial"`
}

// RenderProfile renders a profile document. Identical profiles always render
// to identical documents. Text fields are escaped but never trimmed.
func RenderProfile(profile Profile) (string, error) {
	if profile.SSID == "" {
		return "", &MalformedDataError{Message: "empty SSID"}
	}
	if len(profile.SSID) > SSIDMaxLength {
		return "", &MalformedDataError{Message: "SSID longer than 32 bytes: " + profile.SSID}
	}
	name := profile.Name
	if name == "" {
		name = profile.SSID
	}
	connectionMode := profile.ConnectionMode
	if connectionMode == "" {
		connectionMode = ConnectionModeManual
	}
	document := profileDocument{
		Name: name,
		SSIDConfig: profileSSIDConfig{
			SSID: profileSSID{
				Hex:  strings.ToUpper(hex.EncodeToString([]byte(profile.SSID))),
				Name: profile.SSID,
			},
			NonBroadcast: profile.NonBroadcast,
		},
		ConnectionType: "ESS",
		ConnectionMode: connectionMode,
		AutoSwitch:     profile.AutoSwitch,
		MSM: profileMSM{
			Security: profileSecurity{
				AuthEncryption: profileAuthEncryption{
					Authentication: profile.Security.ProfileString(),
					Encryption:     profile.Encryption.ProfileString(),
				},
			},
		},
	}
	if profile.Security != SecurityOpen {
		document.MSM.Security.SharedKey = &profileSharedKey{
			KeyType:     "passPhrase",
			KeyMaterial: profile.Passphrase,
		}
	}
	content, err := xml.MarshalIndent(document, "", "    ")
	if err != nil {
		return "", E.Cause(err, "render profile ", name)
	}
	return string(content), nil
}

// ParseProfile reads a stored profile document. Documents reformatted by the
// OS profile store are accepted; unknown elements are ignored.
func ParseProfile(content string) (Profile, error) {
	var document profileDocument
	err := xml.Unmarshal([]byte(content), &document)
	if err != nil {
		return Profile{}, E.Cause(err, "parse profile")
	}
	ssid := document.SSIDConfig.SSID.Name
	raw := []byte(ssid)
	if document.SSIDConfig.SSID.Hex != "" {
		raw, err = hex.DecodeString(document.SSIDConfig.SSID.Hex)
		if err != nil {
			return Profile{}, &MalformedDataError{Message: "invalid SSID hex: " + document.SSIDConfig.SSID.Hex}
		}
		ssid = DecodeSSID(raw)
	}
	if len(raw) > SSIDMaxLength {
		return Profile{}, &MalformedDataError{Message: "SSID longer than 32 bytes: " + ssid}
	}
	profile := Profile{
		Name:           document.Name,
		SSID:           ssid,
		Security:       ParseSecurityKind(document.MSM.Security.AuthEncryption.Authentication),
		Encryption:     ParseEncryptionKind(document.MSM.Security.AuthEncryption.Encryption),
		ConnectionMode: document.ConnectionMode,
		AutoSwitch:     document.AutoSwitch,
		NonBroadcast:   document.SSIDConfig.NonBroadcast,
	}
	if sharedKey := document.MSM.Security.SharedKey; sharedKey != nil {
		profile.Passphrase = sharedKey.KeyMaterial
	}
	return profile, nil
}

// IsAutoConnect reports whether a stored document enables automatic
// connection.
func IsAutoConnect(content string) bool {
	return strings.Contains(content, AutoConnectMarker)
}
