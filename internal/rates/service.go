// Package rates holds the scrap material rate table: a global per-kg rate
// per material, with optional per-vendor overrides, persisted as
// rates.csv under the data directory.
package rates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scrapco/scrapledger/internal/model"
)

const ratesFile = "rates.csv"

// Service provides in-memory lookup over the material rate table.
type Service struct {
	rates []model.MaterialRate
	byKey map[rateKey]decimal.Decimal
}

type rateKey struct {
	material string
	vendorID uuid.UUID
}

// NewService creates a Service from a slice of rates. Later rows win on
// duplicate (material, vendor) pairs, matching how the dashboard applies
// rate updates.
func NewService(rates []model.MaterialRate) *Service {
	byKey := make(map[rateKey]decimal.Decimal, len(rates))
	for _, r := range rates {
		byKey[rateKey{r.Material, r.VendorID}] = r.Rate
	}
	return &Service{rates: rates, byKey: byKey}
}

// Load reads rates.csv from the data directory. A missing file is an
// empty table, not an error.
func Load(dataDir string) (*Service, error) {
	path := filepath.Join(dataDir, ratesFile)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewService(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening rates table: %w", err)
	}
	defer f.Close()

	rates, err := ReadRates(f)
	if err != nil {
		return nil, fmt.Errorf("reading rates table: %w", err)
	}
	return NewService(rates), nil
}

// All returns all rates, global rows first, sorted by material.
func (s *Service) All() []model.MaterialRate {
	out := make([]model.MaterialRate, len(s.rates))
	copy(out, s.rates)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Global() != out[j].Global() {
			return out[i].Global()
		}
		return out[i].Material < out[j].Material
	})
	return out
}

// Get returns the effective rate for a material and vendor: the vendor
// override when present, else the global rate.
func (s *Service) Get(material string, vendorID uuid.UUID) (decimal.Decimal, bool) {
	if rate, ok := s.byKey[rateKey{material, vendorID}]; ok {
		return rate, true
	}
	rate, ok := s.byKey[rateKey{material, uuid.Nil}]
	return rate, ok
}

// Set adds or replaces the rate for a material. Pass uuid.Nil to set the
// global rate.
func (s *Service) Set(material string, vendorID uuid.UUID, rate decimal.Decimal) {
	key := rateKey{material, vendorID}
	if _, exists := s.byKey[key]; exists {
		for i := range s.rates {
			if s.rates[i].Material == material && s.rates[i].VendorID == vendorID {
				s.rates[i].Rate = rate
			}
		}
	} else {
		s.rates = append(s.rates, model.MaterialRate{Material: material, VendorID: vendorID, Rate: rate})
	}
	s.byKey[key] = rate
}

// Price computes the purchase amount for a weighed lot: weight (kg) times
// the effective rate. Exact decimal arithmetic; callers convert to
// float64 only at the ledger boundary.
func (s *Service) Price(material string, vendorID uuid.UUID, weightKg decimal.Decimal) (decimal.Decimal, error) {
	rate, ok := s.Get(material, vendorID)
	if !ok {
		return decimal.Zero, fmt.Errorf("no rate for material %q", material)
	}
	return weightKg.Mul(rate), nil
}

// Save writes the rate table to rates.csv in the data directory.
func (s *Service) Save(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	path := filepath.Join(dataDir, ratesFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating rates file: %w", err)
	}
	defer f.Close()

	if err := WriteRates(f, s.rates); err != nil {
		return fmt.Errorf("writing rates table: %w", err)
	}
	return nil
}
