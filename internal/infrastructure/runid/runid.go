package runid

import (
	"io"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator generates ULID run IDs.
type Generator struct {
	now     func() time.Time
	entropy io.Reader
}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{
		now:     time.Now,
		entropy: ulid.DefaultEntropy(),
	}
}

// Generate returns a new run ID. IDs sort by creation time.
func (g *Generator) Generate() string {
	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}

// Time extracts the creation time of a run ID.
func Time(id string) (time.Time, error) {
	parsed, err := ulid.ParseStrict(id)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
