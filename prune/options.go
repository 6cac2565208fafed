// options.go parses the h48 solver options string. The only accepted form is
// "<h>;<k>;<max_depth>" with h in [0,11] and k in {2,4}.

package prune

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// ParseOptions parses an h48 options string into its three fields.
func ParseOptions(options string) (h, k, maxdepth uint8, err error) {
	fields := strings.Split(options, ";")
	if len(fields) != 3 {
		return 0, 0, 0, ErrOptions
	}

	vals := make([]uint8, 3)
	for i, f := range fields {
		v, perr := strconv.ParseUint(strings.TrimSpace(f), 10, 8)
		if perr != nil {
			return 0, 0, 0, ErrOptions
		}
		vals[i] = uint8(v)
	}

	h, k, maxdepth = vals[0], vals[1], vals[2]
	if h > 11 || (k != 2 && k != 4) {
		return 0, 0, 0, ErrOptions
	}
	return h, k, maxdepth, nil
}

// DataInfo logs the header and distribution of every block in a table blob.
func DataInfo(buf []byte, log zerolog.Logger) error {
	blocks, err := readBlocks(buf)
	if err != nil {
		return err
	}

	for i, b := range blocks {
		ev := log.Info().
			Int("block", i+1).
			Uint8("maxvalue", b.Info.MaxValue).
			Uint64("entries", b.Info.Entries)
		switch b.Info.Kind {
		case KindCocsep:
			ev = ev.Str("kind", "cocsep")
		case KindH48:
			ev = ev.Str("kind", "h48").
				Uint8("h", b.Info.H).
				Uint8("k", b.Info.K).
				Uint8("base", b.Info.Base)
		}
		ev.Msg("table block")

		for v, n := range b.Info.Distribution {
			if n == 0 {
				continue
			}
			log.Info().Int("value", v).Uint64("positions", n).Msg("distribution")
		}
	}

	return nil
}
