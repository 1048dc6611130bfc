package storage

import (
	"strconv"
	"strings"

	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/logging"
	"github.com/manav03panchal/milkledger/internal/model"
	"github.com/manav03panchal/milkledger/internal/validate"
)

// PriceRepo provides operations for the two price settings.
type PriceRepo struct {
	db *DB
}

// NewPriceRepo creates a new price repository.
func NewPriceRepo(db *DB) *PriceRepo {
	return &PriceRepo{db: db}
}

// Get retrieves the prices, returning defaults for any price not set.
// A stored value that does not parse as a number also falls back to the default.
func (r *PriceRepo) Get() (model.Prices, error) {
	prices := model.DefaultPrices()

	cow, err := r.load(model.KeyCowPrice)
	if err != nil {
		return prices, err
	}
	if cow != nil {
		prices.Cow = *cow
	}

	buffalo, err := r.load(model.KeyBuffaloPrice)
	if err != nil {
		return prices, err
	}
	if buffalo != nil {
		prices.Buffalo = *buffalo
	}

	return prices, nil
}

func (r *PriceRepo) load(key string) (*float64, error) {
	data, err := r.db.GetBytes(key)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return nil, nil
		}
		return nil, errors.FromStorage("load prices", err)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil || !(model.Prices{Cow: v}).Valid() {
		logging.Warn("ignoring unreadable stored price", "key", key, "value", string(data))
		return nil, nil
	}
	return &v, nil
}

// Set stores both prices in one write.
func (r *PriceRepo) Set(prices model.Prices) error {
	if err := validate.Prices(prices); err != nil {
		return err
	}

	err := r.db.SetMany(map[string][]byte{
		model.KeyCowPrice:     []byte(model.FormatAmount(prices.Cow)),
		model.KeyBuffaloPrice: []byte(model.FormatAmount(prices.Buffalo)),
	})
	if err != nil {
		return errors.FromStorage("save prices", err)
	}
	return nil
}
