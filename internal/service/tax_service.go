package service

import (
	"context"
	"fmt"
	"strings"

	"treasury-engine/config"
	"treasury-engine/internal/core/domain"
	"treasury-engine/internal/core/ports"
	"treasury-engine/pkg/apperror"
	"treasury-engine/pkg/metrics"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// taxEngineSource tags tax hold events in the ledger.
const taxEngineSource = "tax-engine"

// TaxEngine derives tax_hold events from income events. It subscribes to
// the event bus; a failed derivation is logged and left for the
// reconciliation worker to heal, never retried inline.
type TaxEngine struct {
	ledger     ports.LedgerService
	countries  ports.CountryLookup
	defaultPct decimal.Decimal
	countryPct map[string]decimal.Decimal
	currencies map[string]struct{}
	log        zerolog.Logger
}

// NewTaxEngine creates a tax engine from the withholding rule config.
// Percentage strings are parsed once here so a bad rule fails startup,
// not the first income event.
func NewTaxEngine(ledger ports.LedgerService, countries ports.CountryLookup, cfg config.TaxConfig, log zerolog.Logger) (*TaxEngine, error) {
	defaultPct, err := decimal.NewFromString(cfg.DefaultPct)
	if err != nil {
		return nil, fmt.Errorf("parse default tax pct %q: %w", cfg.DefaultPct, err)
	}

	countryPct := make(map[string]decimal.Decimal, len(cfg.CountryPct))
	for country, pctStr := range cfg.CountryPct {
		pct, err := decimal.NewFromString(pctStr)
		if err != nil {
			return nil, fmt.Errorf("parse tax pct for %s: %w", country, err)
		}
		countryPct[strings.ToUpper(country)] = pct
	}

	currencies := make(map[string]struct{}, len(cfg.SupportedCurrencies))
	for _, c := range cfg.SupportedCurrencies {
		currencies[strings.ToUpper(c)] = struct{}{}
	}

	return &TaxEngine{
		ledger:     ledger,
		countries:  countries,
		defaultPct: defaultPct,
		countryPct: countryPct,
		currencies: currencies,
		log:        log,
	}, nil
}

// Register subscribes the engine to the bus.
func (e *TaxEngine) Register(bus ports.EventBus) {
	bus.Subscribe(taxEngineSource, func(ctx context.Context, event domain.LedgerEvent) {
		if _, err := e.DeriveHold(ctx, event); err != nil {
			e.log.Error().Err(err).
				Str("event_id", event.ID.String()).
				Str("user_id", event.UserID.String()).
				Msg("tax hold derivation failed, left for reconciliation")
		}
	})
}

// DeriveHold computes and records the withholding for one income event.
// Returns true if a tax_hold was recorded, false if the event was
// skipped (not income, unsupported currency, or zero withholding).
func (e *TaxEngine) DeriveHold(ctx context.Context, event domain.LedgerEvent) (bool, error) {
	if event.EventType != domain.EventTypeIncome {
		return false, nil
	}
	if _, ok := e.currencies[strings.ToUpper(event.Currency)]; !ok {
		e.log.Debug().
			Str("event_id", event.ID.String()).
			Str("currency", event.Currency).
			Msg("unsupported currency, no withholding derived")
		return false, nil
	}
	if event.Amount.IsZero() {
		return false, nil
	}

	country := e.resolveCountry(ctx, event)
	pct := e.defaultPct
	if p, ok := e.countryPct[country]; ok {
		pct = p
	}

	withheld := event.Amount.Mul(pct).Div(oneHundred).Round(2)
	if withheld.Sign() <= 0 {
		return false, nil
	}

	_, err := e.ledger.RecordLedgerEvent(ctx, ports.RecordEventInput{
		UserID:           event.UserID,
		EventType:        domain.EventTypeTaxHold,
		Amount:           withheld.String(),
		Currency:         event.Currency,
		Source:           taxEngineSource,
		RelatedInvoiceID: event.RelatedInvoiceID,
		Metadata: domain.TaxHoldMetadata{
			OriginalEventID: event.ID,
			Pct:             pct,
			Country:         country,
		},
	})
	if err != nil {
		return false, apperror.ErrWithholdingDerivation(err)
	}

	metrics.TaxHoldsDerived.Inc()

	e.log.Info().
		Str("income_event_id", event.ID.String()).
		Str("user_id", event.UserID.String()).
		Str("country", country).
		Str("pct", pct.String()).
		Str("withheld", withheld.String()).
		Msg("tax hold derived")

	return true, nil
}

// resolveCountry prefers the country carried on the income event itself,
// then the profile lookup, then the default bucket (empty string).
func (e *TaxEngine) resolveCountry(ctx context.Context, event domain.LedgerEvent) string {
	if meta, ok := event.Metadata.(domain.IncomeMetadata); ok && meta.Country != "" {
		return strings.ToUpper(meta.Country)
	}

	country, err := e.countries.CountryOfResidence(ctx, event.UserID)
	if err != nil {
		e.log.Warn().Err(err).
			Str("user_id", event.UserID.String()).
			Msg("country lookup failed, using default rate")
		return ""
	}
	return strings.ToUpper(country)
}

var oneHundred = decimal.NewFromInt(100)
