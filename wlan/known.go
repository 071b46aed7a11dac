package wlan

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sagernet/sing-wlan/common"
	E "github.com/sagernet/sing-wlan/common/exceptions"
)

// ParseKnownNetworks reads a newline-delimited SSID list. Lines are trimmed
// and blank lines skipped.
func ParseKnownNetworks(reader io.Reader) ([]string, error) {
	var networks []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		ssid := strings.TrimSpace(scanner.Text())
		if ssid == "" {
			continue
		}
		networks = append(networks, ssid)
	}
	err := scanner.Err()
	if err != nil {
		return nil, E.Cause(err, "read known networks")
	}
	return networks, nil
}

// LoadKnownNetworks reads the list at path. A missing file is an empty list.
func LoadKnownNetworks(path string) ([]string, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, E.Cause(err, "open known networks")
	}
	defer file.Close()
	return ParseKnownNetworks(file)
}

// AddKnownNetwork appends ssid to the list at path unless already present.
func AddKnownNetwork(path string, ssid string) error {
	networks, err := LoadKnownNetworks(path)
	if err != nil {
		return err
	}
	if IsKnownNetwork(networks, ssid) {
		return nil
	}
	err = os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return E.Cause(err, "create known networks directory")
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return E.Cause(err, "open known networks")
	}
	defer file.Close()
	_, err = file.WriteString(ssid + "\n")
	if err != nil {
		return E.Cause(err, "write known networks")
	}
	return nil
}

func IsKnownNetwork(networks []string, ssid string) bool {
	return common.Contains(networks, ssid)
}
