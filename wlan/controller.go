package wlan

import (
	"github.com/sirupsen/logrus"
)

type Controller struct {
	native Native
	logger *logrus.Entry
}

func NewController(native Native, logger *logrus.Entry) *Controller {
	return &Controller{
		native: native,
		logger: logger,
	}
}

// Connect submits a connection request using the stored profile named ssid.
// No SSID is passed, so the OS connects to the SSIDs listed in the profile.
// A nil error means the request was accepted, not that the link is up.
func (c *Controller) Connect(id InterfaceID, ssid string) error {
	err := c.native.Connect(id, ConnectionParameters{
		Mode:        ConnectionModeProfile,
		ProfileName: ssid,
		BSSType:     BSSTypeInfrastructure,
	})
	if err != nil {
		c.logger.Error("connect ", ssid, ": ", err)
		return &ConnectError{SSID: ssid, Err: err}
	}
	c.logger.Info("connection to ", ssid, " requested")
	return nil
}

func (c *Controller) Disconnect(id InterfaceID) error {
	err := c.native.Disconnect(id)
	if err != nil {
		c.logger.Error("disconnect: ", err)
		return &DisconnectError{Err: err}
	}
	c.logger.Info("disconnect requested")
	return nil
}

// CurrentConnection returns the SSID of the current connection. Not being
// connected is reported as ok == false with a nil error.
func (c *Controller) CurrentConnection(id InterfaceID) (ssid string, ok bool, err error) {
	attributes, err := c.native.QueryCurrentConnection(id)
	if err != nil {
		if code, loaded := StatusCode(err); loaded && code == StatusInvalidState {
			c.logger.Debug("not connected")
			return "", false, nil
		}
		c.logger.Error("query current connection: ", err)
		return "", false, &QueryError{Err: err}
	}
	rawSSID := attributes.SSID.Bytes()
	if rawSSID == nil {
		return "", false, &QueryError{Err: &MalformedDataError{Message: "SSID longer than 32 bytes"}}
	}
	return DecodeSSID(rawSSID), true, nil
}

// SetProfile installs a profile document. On failure the OS reason code is
// resolved to text when possible.
func (c *Controller) SetProfile(id InterfaceID, document string, overwrite bool) error {
	reasonCode, err := c.native.SetProfile(id, document, overwrite)
	if err == nil {
		c.logger.Debug("profile installed")
		return nil
	}
	profileErr := &ProfileError{Op: "set", ReasonCode: reasonCode, Err: err}
	if reasonCode != 0 {
		reason, reasonErr := c.native.ReasonCodeString(reasonCode)
		if reasonErr != nil {
			c.logger.Warn("resolve reason code ", reasonCode, ": ", reasonErr)
		} else {
			profileErr.Reason = reason
		}
	}
	c.logger.Error(profileErr)
	return profileErr
}

func (c *Controller) ProfileList(id InterfaceID) ([]ProfileInfo, error) {
	profiles, err := c.native.ProfileList(id)
	if err != nil {
		c.logger.Error("get profile list: ", err)
		return nil, &ProfileError{Op: "list", Err: err}
	}
	return profiles, nil
}

func (c *Controller) Profile(id InterfaceID, name string) (string, error) {
	document, err := c.native.Profile(id, name)
	if err != nil {
		c.logger.Error("get profile ", name, ": ", err)
		return "", &ProfileError{Op: "get", Name: name, Err: err}
	}
	return document, nil
}

func (c *Controller) DeleteProfile(id InterfaceID, name string) error {
	err := c.native.DeleteProfile(id, name)
	if err != nil {
		c.logger.Error("delete profile ", name, ": ", err)
		return &ProfileError{Op: "delete", Name: name, Err: err}
	}
	c.logger.Info("deleted profile ", name)
	return nil
}

func (c *Controller) HasProfile(id InterfaceID, name string) (bool, error) {
	profiles, err := c.ProfileList(id)
	if err != nil {
		return false, err
	}
	for _, profile := range profiles {
		if profile.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// FindAutoConnectProfile returns the first profile in profiles whose stored
// document enables automatic connection. Profiles that cannot be fetched are
// skipped.
func (c *Controller) FindAutoConnectProfile(id InterfaceID, profiles []ProfileInfo) (string, bool) {
	for _, profile := range profiles {
		document, err := c.Profile(id, profile.Name)
		if err != nil {
			continue
		}
		if IsAutoConnect(document) {
			return profile.Name, true
		}
	}
	return "", false
}
