package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/findy-ai/property-engine/internal/observability"
)

// Snapshot column headers as they appear in the source export.
const (
	colSource        = "Fuente/Origen"
	colListingURL    = "Titulo_URL"
	colPrice         = "Precio"
	colLatitude      = "Latitud"
	colLongitude     = "Longitud"
	colAddress       = "Dirección"
	colNeighborhood  = "Barrio/Zona"
	colProvince      = "Provincia"
	colPropertyType  = "Tipología/Producto"
	colMapLink       = "google_maps"
	colPublishedDate = "Fecha de publicación"
	colVendor        = "Vendedor"
	colTotalArea     = "m2 totales"
	colCoveredArea   = "m2 cubiertos"
	colBedrooms      = "Dormitorios"
	colBathrooms     = "Baños"
)

// Provider is the read-only view of the snapshot consumed by search components.
type Provider interface {
	Load() []Property
	Count() int
}

// Loader reads the listings CSV once and memoizes the parsed records for
// process lifetime. Concurrent first-touch calls serialize on a mutex so the
// file is read and parsed at most once; a failed load is logged and returns
// an empty slice without marking the cache as loaded, so a later call retries.
type Loader struct {
	path      string
	delimiter rune
	logger    *observability.Logger

	mu      sync.Mutex
	loaded  bool
	records []Property
}

// NewLoader creates a loader for the snapshot at path.
func NewLoader(path string, delimiter string, logger *observability.Logger) *Loader {
	delim := ','
	if delimiter != "" {
		delim = rune(delimiter[0])
	}
	if logger == nil {
		logger = observability.Nop()
	}
	return &Loader{
		path:      path,
		delimiter: delim,
		logger:    logger.WithComponent("dataset"),
	}
}

// Load returns the memoized records, reading the backing file on first use.
// Load never fails from the caller's perspective: on read or parse errors it
// returns an empty slice and downstream searches legitimately find nothing.
func (l *Loader) Load() []Property {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return l.records
	}
	return l.loadLocked()
}

// Reload forces a re-read of the backing file, replacing the cached records.
func (l *Loader) Reload() []Property {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loaded = false
	l.records = nil
	return l.loadLocked()
}

// Count returns the number of records currently loaded.
func (l *Loader) Count() int {
	return len(l.Load())
}

func (l *Loader) loadLocked() []Property {
	records, err := l.readFile()
	if err != nil {
		l.logger.Error().Err(err).Str("path", l.path).Msg("Failed to load listings snapshot")
		return nil
	}

	l.records = records
	l.loaded = true
	l.logger.Info().Int("records", len(records)).Str("path", l.path).Msg("Listings snapshot loaded")
	return l.records
}

func (l *Loader) readFile() ([]Property, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = l.delimiter
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var records []Property
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(records)+1, err)
		}

		field := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		records = append(records, Property{
			ID:            fmt.Sprintf("prop_%d", len(records)+1),
			Source:        field(colSource),
			ListingURL:    field(colListingURL),
			Price:         parseCount(field(colPrice)),
			Latitude:      parseCoord(field(colLatitude)),
			Longitude:     parseCoord(field(colLongitude)),
			Address:       field(colAddress),
			Neighborhood:  field(colNeighborhood),
			Province:      field(colProvince),
			PropertyType:  field(colPropertyType),
			MapLink:       field(colMapLink),
			PublishedDate: field(colPublishedDate),
			Vendor:        field(colVendor),
			TotalArea:     parseCount(field(colTotalArea)),
			CoveredArea:   parseCount(field(colCoveredArea)),
			Bedrooms:      parseCount(field(colBedrooms)),
			Bathrooms:     parseCount(field(colBathrooms)),
		})
	}

	return records, nil
}

// parseCount parses a non-negative integer field, defaulting to 0 on any
// malformed input instead of rejecting the record.
func parseCount(s string) int {
	if s == "" {
		return 0
	}
	// Tolerate values exported with a decimal part or thousands separators.
	s = strings.ReplaceAll(s, ",", "")
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s = s[:dot]
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseCoord(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Static implements Provider over a fixed record slice, for tests and
// fixture-backed callers that need no filesystem access.
type Static []Property

// Load returns the fixed records.
func (s Static) Load() []Property { return s }

// Count returns the number of fixture properties.
func (s Static) Count() int { return len(s) }
