package wlan

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

type Scanner struct {
	native   Native
	logger   *logrus.Entry
	access   sync.RWMutex
	networks map[string]NetworkRecord
}

func NewScanner(native Native, logger *logrus.Entry) *Scanner {
	return &Scanner{
		native:   native,
		logger:   logger,
		networks: make(map[string]NetworkRecord),
	}
}

// RequestScan submits a scan and returns without waiting for results.
func (s *Scanner) RequestScan(id InterfaceID) error {
	err := s.native.Scan(id)
	if err != nil {
		s.logger.Error("request scan: ", err)
		return &EnumerationError{Target: "scan", Err: err}
	}
	s.logger.Debug("scan requested")
	return nil
}

// Refresh rebuilds the network table from the available network list.
func (s *Scanner) Refresh(id InterfaceID) error {
	rawNetworks, err := s.native.AvailableNetworks(id)
	if err != nil {
		s.logger.Error("get available networks: ", err)
		return &EnumerationError{Target: "networks", Err: err}
	}
	networks := make(map[string]NetworkRecord, len(rawNetworks))
	var dropped int
	for _, rawNetwork := range rawNetworks {
		record, loaded := ClassifyNetwork(rawNetwork)
		if !loaded {
			dropped++
			continue
		}
		if existing, duplicate := networks[record.SSID]; duplicate && existing.SignalQuality >= record.SignalQuality {
			continue
		}
		networks[record.SSID] = record
	}
	if dropped > 0 {
		s.logger.Debug("dropped ", dropped, " networks with malformed SSID")
	}
	s.access.Lock()
	s.networks = networks
	s.access.Unlock()
	s.logger.Debug("found ", len(networks), " networks")
	return nil
}

// Networks returns the table ordered by signal bars, strongest first, then
// by SSID.
func (s *Scanner) Networks() []NetworkRecord {
	s.access.RLock()
	records := make([]NetworkRecord, 0, len(s.networks))
	for _, record := range s.networks {
		records = append(records, record)
	}
	s.access.RUnlock()
	sort.Slice(records, func(i, j int) bool {
		if records[i].Bars != records[j].Bars {
			return records[i].Bars > records[j].Bars
		}
		return records[i].SSID < records[j].SSID
	})
	return records
}

func (s *Scanner) Network(ssid string) (NetworkRecord, bool) {
	s.access.RLock()
	defer s.access.RUnlock()
	record, loaded := s.networks[ssid]
	return record, loaded
}

func (s *Scanner) Clear() {
	s.access.Lock()
	s.networks = make(map[string]NetworkRecord)
	s.access.Unlock()
}
