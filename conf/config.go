package conf

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	E "github.com/sagernet/sing-wlan/common/exceptions"
	"github.com/sagernet/sing-wlan/common/log"
	"github.com/sagernet/sing-wlan/wlan"

	"gopkg.in/yaml.v3"
)

const (
	DefaultScanDelay      = 4 * time.Second
	DefaultPollInterval   = 200 * time.Millisecond
	DefaultConnectTimeout = 20 * time.Second
	DefaultKnownNetworks  = "wlan_data/known_networks.txt"
	DefaultProfileStore   = "wlan_data/profiles.db"
)

type Options struct {
	Log             log.Options `json:"log,omitempty" yaml:"log,omitempty"`
	ClientVersion   uint32      `json:"client_version,omitempty" yaml:"client_version,omitempty"`
	SelectionPolicy string      `json:"selection_policy,omitempty" yaml:"selection_policy,omitempty"`
	StatusBuffer    int         `json:"status_buffer,omitempty" yaml:"status_buffer,omitempty"`
	ScanDelay       Duration    `json:"scan_delay,omitempty" yaml:"scan_delay,omitempty"`
	PollInterval    Duration    `json:"poll_interval,omitempty" yaml:"poll_interval,omitempty"`
	ConnectTimeout  Duration    `json:"connect_timeout,omitempty" yaml:"connect_timeout,omitempty"`
	KnownNetworks   string      `json:"known_networks,omitempty" yaml:"known_networks,omitempty"`
	ProfileStore    string      `json:"profile_store,omitempty" yaml:"profile_store,omitempty"`
}

// Load reads options from a JSON or YAML file chosen by extension. A missing
// path yields defaults.
func Load(path string) (Options, error) {
	var options Options
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return Options{}, E.Cause(err, "read config")
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(content, &options)
		default:
			decoder := json.NewDecoder(bytes.NewReader(content))
			decoder.DisallowUnknownFields()
			err = decoder.Decode(&options)
		}
		if err != nil {
			return Options{}, E.Cause(err, "decode config ", path)
		}
	}
	options.ApplyDefaults()
	return options, options.Validate()
}

func (o *Options) ApplyDefaults() {
	if o.ClientVersion == 0 {
		o.ClientVersion = wlan.ClientVersionVista
	}
	if o.StatusBuffer <= 0 {
		o.StatusBuffer = wlan.DefaultStatusBuffer
	}
	if o.ScanDelay <= 0 {
		o.ScanDelay = Duration(DefaultScanDelay)
	}
	if o.PollInterval <= 0 {
		o.PollInterval = Duration(DefaultPollInterval)
	}
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = Duration(DefaultConnectTimeout)
	}
	if o.KnownNetworks == "" {
		o.KnownNetworks = DefaultKnownNetworks
	}
	if o.ProfileStore == "" {
		o.ProfileStore = DefaultProfileStore
	}
}

func (o Options) Validate() error {
	if o.ClientVersion != wlan.ClientVersionXP && o.ClientVersion != wlan.ClientVersionVista {
		return E.New("unsupported client version: ", o.ClientVersion)
	}
	_, err := wlan.ParseSelectionPolicy(o.SelectionPolicy)
	return err
}

func (o Options) Policy() wlan.SelectionPolicy {
	policy, _ := wlan.ParseSelectionPolicy(o.SelectionPolicy)
	return policy
}

func (o Options) NativeOptions() wlan.NativeOptions {
	return wlan.NativeOptions{
		ProfileStore:   o.ProfileStore,
		ConnectTimeout: o.ConnectTimeout.Build(),
	}
}
