package domain

// Rate tiers for the duration-based service fee.
const (
	RateTierShortTerm = "short_term"
	RateTierLongTerm  = "long_term"
)

// percentMultiplier converts a fractional rate to the percentage figure
// stored in charge metadata.
const percentMultiplier = 100

// FeeConfig carries every fee rate the calculator needs. It is injected
// rather than read from process-wide constants so tests and alternate
// pricing regimes can override rates without global mutation.
type FeeConfig struct {
	// ServiceFeeShortTermRate applies to leases shorter than
	// ServiceFeeThresholdMonths whole months.
	ServiceFeeShortTermRate float64
	// ServiceFeeLongTermRate applies at or beyond the threshold.
	ServiceFeeLongTermRate    float64
	ServiceFeeThresholdMonths int
	// CardFeeRate is the processor cut used by the self-inclusive
	// credit card fee formula.
	CardFeeRate float64
	// TransferFeeCents is the flat fee on deposit transactions.
	TransferFeeCents int64
}

// DefaultFeeConfig returns the production fee schedule.
func DefaultFeeConfig() FeeConfig {
	return FeeConfig{
		ServiceFeeShortTermRate:   0.03,
		ServiceFeeLongTermRate:    0.015,
		ServiceFeeThresholdMonths: 6,
		CardFeeRate:               0.03,
		TransferFeeCents:          700,
	}
}

func (c FeeConfig) withDefaults() FeeConfig {
	defaults := DefaultFeeConfig()
	if c.ServiceFeeShortTermRate <= 0 {
		c.ServiceFeeShortTermRate = defaults.ServiceFeeShortTermRate
	}
	if c.ServiceFeeLongTermRate <= 0 {
		c.ServiceFeeLongTermRate = defaults.ServiceFeeLongTermRate
	}
	if c.ServiceFeeThresholdMonths <= 0 {
		c.ServiceFeeThresholdMonths = defaults.ServiceFeeThresholdMonths
	}
	if c.CardFeeRate <= 0 {
		c.CardFeeRate = defaults.CardFeeRate
	}
	if c.TransferFeeCents <= 0 {
		c.TransferFeeCents = defaults.TransferFeeCents
	}
	return c
}

// serviceFeeRate resolves the tiered rate for a lease duration.
func (c FeeConfig) serviceFeeRate(durationMonths int) (float64, string) {
	if durationMonths >= c.ServiceFeeThresholdMonths {
		return c.ServiceFeeLongTermRate, RateTierLongTerm
	}
	return c.ServiceFeeShortTermRate, RateTierShortTerm
}
