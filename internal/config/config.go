package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Addr() string
	Password() string
	DB() int
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

// StorageConfig selects the balance backend: memory, redis or postgres.
type StorageConfig interface {
	Backend() string
	InitialBalance() int
}

type TimersConfig interface {
	JackpotInterval() time.Duration
	DividendInterval() time.Duration
	TickInterval() time.Duration
	OpponentDelay() time.Duration
	MatchDelay() time.Duration
}

type TelegramConfig interface {
	Enabled() bool
	Token() string
	ChatID() int64
}

type ConciergeConfig interface {
	APIKey() string
	Model() string
	BaseURL() string
	Timeout() time.Duration
}

type LogConfig interface {
	Level() string
	Format() string
}

type GamesConfig interface {
	Roulette() RouletteTable
	Blackjack() BlackjackTable
	Poker() PokerTable
	VideoPoker() VideoPokerTable
	Slots() SlotsTable
	Dice() DiceTable
	Mines() MinesTable
	Crash() CrashTable
	Wheel() WheelTable
	Keno() KenoTable
	Durak() DurakTable
	Baccarat() BaccaratTable
	Billiards() BilliardsTable
	Jackpot() JackpotTable
}
