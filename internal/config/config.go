package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Homeserver  string
	UserID      string
	AccessToken string

	// Ключи внешних API. Все опциональны: без ключа деградирует только
	// соответствующий адаптер.
	EtherscanAPIKey   string
	BlockcypherAPIKey string
	TrongridAPIKey    string

	// Таймаут одного исходящего HTTP-запроса к эксплорерам.
	HTTPTimeout time.Duration
}

func Load() (Config, error) {
	cfg := Config{
		Homeserver:        os.Getenv("MATRIX_HOMESERVER"),
		UserID:            os.Getenv("MATRIX_USER_ID"),
		AccessToken:       os.Getenv("MATRIX_ACCESS_TOKEN"),
		EtherscanAPIKey:   os.Getenv("ETHERSCAN_API_KEY"),
		BlockcypherAPIKey: os.Getenv("BLOCKCYPHER_API_KEY"),
		TrongridAPIKey:    os.Getenv("TRONGRID_API_KEY"),
		HTTPTimeout:       15 * time.Second,
	}

	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("bad HTTP_TIMEOUT_SECONDS: %q", v)
		}
		cfg.HTTPTimeout = time.Duration(n) * time.Second
	}

	if cfg.Homeserver == "" || cfg.UserID == "" || cfg.AccessToken == "" {
		return Config{}, errors.New("MATRIX_HOMESERVER, MATRIX_USER_ID and MATRIX_ACCESS_TOKEN are required")
	}
	if !strings.HasPrefix(cfg.UserID, "@") {
		return Config{}, fmt.Errorf("MATRIX_USER_ID must start with @, got: %s", cfg.UserID)
	}

	return cfg, nil
}
