package model

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-levels/pkg/safe"
)

// Level is a block height. The API sends it either as a JSON number or as a string.
type Level uint64

func ParseLevel(s string) (Level, error) {
	v, err := safe.ParseUint64(s)
	if err != nil {
		return 0, fmt.Errorf("parse level: %w", err)
	}
	return Level(v), nil
}

func (l Level) String() string {
	return strconv.FormatUint(uint64(l), 10)
}

func (l *Level) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return errors.New("parse level: null")
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}

	v, err := ParseLevel(raw)
	if err != nil {
		return err
	}
	*l = v
	return nil
}
