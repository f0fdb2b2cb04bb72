package stationcode

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
)

// Static reader-dump code tables. Loaded once on first use and never mutated
// afterwards, so lookups are safe from any goroutine without locking.

//go:embed stations.json
var stationsRaw []byte

//go:embed issuers.json
var issuersRaw []byte

var (
	once     sync.Once
	stations map[int]string
	issuers  map[int]string
	loadErr  error
)

func load() {
	var rawStations map[string]string
	if err := json.Unmarshal(stationsRaw, &rawStations); err != nil {
		loadErr = fmt.Errorf("failed to load station table: %w", err)
		return
	}

	var rawIssuers map[string]string
	if err := json.Unmarshal(issuersRaw, &rawIssuers); err != nil {
		loadErr = fmt.Errorf("failed to load issuer table: %w", err)
		return
	}

	stations = make(map[int]string, len(rawStations))
	for k, v := range rawStations {
		code, err := strconv.Atoi(k)
		if err != nil {
			loadErr = fmt.Errorf("invalid station code %q: %w", k, err)
			return
		}
		stations[code] = v
	}

	issuers = make(map[int]string, len(rawIssuers))
	for k, v := range rawIssuers {
		code, err := strconv.Atoi(k)
		if err != nil {
			loadErr = fmt.Errorf("invalid issuer code %q: %w", k, err)
			return
		}
		issuers[code] = v
	}
}

// StationName resolves a raw station code to its display name.
func StationName(code int) (string, bool) {
	once.Do(load)
	if loadErr != nil {
		return "", false
	}
	name, ok := stations[code]
	return name, ok
}

// CardType resolves an issuer code to the card brand name.
func CardType(issuerCode int) (string, bool) {
	once.Do(load)
	if loadErr != nil {
		return "", false
	}
	name, ok := issuers[issuerCode]
	return name, ok
}
