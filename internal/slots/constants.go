package slots

// Grid shape used by the built-in classic machine
const (
	DefaultRows  = 3
	DefaultReels = 5
)

// Payout table bounds
const (
	MinLineMatch   = 2 // Line tables start at two in a row
	MinScatterPays = 3 // Smallest scatter count a scatter table may key on
)

// Thresholds for special triggers, as total payout / bet
const (
	BigWinThreshold      = 10.0
	JackpotThreshold     = 50.0
	MegaJackpotThreshold = 100.0
)

// Trigger types for visual effects
const (
	TriggerNormal      = "normal"
	TriggerBigWin      = "big_win"
	TriggerJackpot     = "jackpot"
	TriggerMegaJackpot = "mega_jackpot"
)

// Simulation limits
const (
	MaxSimulationSpins   = 10_000_000
	DefaultSimWorkers    = 4
	MaxSimulationWorkers = 64
)

// Classic machine defaults
const (
	ClassicDefaultBet = 10
	ClassicMinBet     = 1
	ClassicMaxBet     = 1000
)

// Standard payline names for a 3-row machine
const (
	PaylineHorizontal1 = "HORIZONTAL_1"
	PaylineHorizontal2 = "HORIZONTAL_2"
	PaylineHorizontal3 = "HORIZONTAL_3"
	PaylineV           = "V"
	PaylineInvertedV   = "INVERTED_V"
)
