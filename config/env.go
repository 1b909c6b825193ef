package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const envPrefix = "AISDKSTREAM_"

// LoadEnv builds Options from environment variables under the
// AISDKSTREAM_ prefix, loading a .env file first if one is present. A
// missing .env file is not an error; missing environment variables simply
// leave the corresponding Default() value in place.
func LoadEnv() (Options, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Options{}, err
	}

	opts := Default()

	if v, ok := os.LookupEnv(envPrefix + "MESSAGE_ID"); ok {
		opts.MessageID = v
	}
	if v, ok := os.LookupEnv(envPrefix + "PROTOCOL_VERSION"); ok {
		opts.ProtocolVersion = ProtocolVersion(v)
	}
	if v, ok := os.LookupEnv(envPrefix + "OUTPUT_FORMAT"); ok {
		opts.OutputFormat = OutputFormat(v)
	}
	if v, ok := os.LookupEnv(envPrefix + "AUTO_EVENTS"); ok {
		opts.AutoEvents = mustParseBool(v, opts.AutoEvents)
	}
	if v, ok := os.LookupEnv(envPrefix + "AUTO_CLOSE"); ok {
		opts.AutoClose = mustParseBool(v, opts.AutoClose)
	}
	if v, ok := os.LookupEnv(envPrefix + "AUTO_CONTEXT"); ok {
		opts.AutoContext = mustParseBool(v, opts.AutoContext)
	}
	if v, ok := os.LookupEnv(envPrefix + "BUFFER_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			opts.BufferSize = n
		}
	}

	return opts, nil
}

func mustParseBool(s string, fallback bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return b
}
