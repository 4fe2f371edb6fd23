package configs

import "time"

// Escrow configures the escrow engine.
type Escrow struct {
	// ProgramName scopes every derived address. Changing it moves all
	// campaigns and donations to new addresses, so it must stay fixed for
	// the lifetime of a database.
	ProgramName string `env:"PROGRAM_NAME" envDefault:"crowd-escrow"`
	// LegacyFinalize lets an already finalized campaign be finalized again,
	// re-running the payout decision.
	LegacyFinalize bool `env:"LEGACY_FINALIZE" envDefault:"false"`
}

// Auth configures how callers prove their identity.
type Auth struct {
	// VerifySignatures requires a recoverable secp256k1 signature over each
	// request. When false the X-Signer header is trusted as is.
	VerifySignatures bool `env:"VERIFY_SIGNATURES" envDefault:"true"`
	// MaxClockSkew is the accepted distance between X-Timestamp and the
	// server clock.
	MaxClockSkew time.Duration `env:"MAX_CLOCK_SKEW" envDefault:"5m"`
}
