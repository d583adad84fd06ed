// CLAUDE:SUMMARY Per-instance record generator: resolves region constraints, encodes the identity number, fills cosmetic fields.
//
// Package person assembles complete synthetic identity records on top of
// the region resolution engine and the identity number codec.
package person

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fixturelab/shenfen/pkg/idnum"
	"github.com/fixturelab/shenfen/pkg/region"
)

// DefaultFallbackRegion is substituted when a region name misses every
// resolution tier. Caller-layer policy, overridable via Config.
const DefaultFallbackRegion = "110101"

// Record is one generated identity. Immutable once produced.
type Record struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Gender     int    `json:"gender"` // 0 female, 1 male
	IDNumber   string `json:"id_number"`
	BirthDate  string `json:"birth_date"` // YYYY-MM-DD
	Age        int    `json:"age"`
	RegionCode string `json:"region_code"`
	Region     string `json:"region"` // joined display name chain
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// Options constrain a single generation call. Zero values mean "pick
// randomly". RegionCode wins over RegionName, BirthDate over Age.
type Options struct {
	RegionName string
	RegionCode string
	BirthDate  string // YYYYMMDD
	Age        *int   // 0-120
	Gender     *int   // 0 or 1
}

// Config configures a Generator.
type Config struct {
	Units          []region.Unit // nil = embedded dataset
	Strategy       FieldStrategy // nil = DefaultStrategy()
	FallbackRegion string        // "" = DefaultFallbackRegion
	Seed           int64         // 0 = time-seeded
	Logger         *slog.Logger  // nil = slog.Default()
}

// Generator produces identity records. Each instance owns its hierarchy,
// resolver and random source, so independent instances never share state.
type Generator struct {
	hierarchy *region.Hierarchy
	resolver  *region.Resolver
	rng       *rand.Rand
	strategy  FieldStrategy
	defaults  FieldStrategy
	fallback  string
	logger    *slog.Logger
	now       func() time.Time

	districtPool []string // lazily built list of concrete district codes
}

// New builds a Generator. Loading the embedded dataset is the only I/O-free
// failure mode left: it only fails if the embedded table is corrupt.
func New(cfg Config) (*Generator, error) {
	units := cfg.Units
	if units == nil {
		var err error
		units, err = region.LoadBuiltin()
		if err != nil {
			return nil, fmt.Errorf("load builtin dataset: %w", err)
		}
	}

	strategy := cfg.Strategy
	if strategy == nil {
		strategy = DefaultStrategy()
	}
	fallback := cfg.FallbackRegion
	if fallback == "" {
		fallback = DefaultFallbackRegion
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	h := region.NewHierarchy(units)
	return &Generator{
		hierarchy: h,
		resolver:  region.NewResolver(h),
		rng:       rand.New(rand.NewSource(seed)),
		strategy:  strategy,
		defaults:  DefaultStrategy(),
		fallback:  fallback,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// Resolver exposes the generator's region resolver for callers that only
// need name resolution.
func (g *Generator) Resolver() *region.Resolver {
	return g.resolver
}

// Generate produces one record under the given constraints.
func (g *Generator) Generate(opts Options) (*Record, error) {
	code, err := g.regionCode(opts)
	if err != nil {
		return nil, err
	}
	district := g.hierarchy.ResolveToDistrict(code, g.rng)

	gender := g.rng.Intn(2)
	if opts.Gender != nil {
		if *opts.Gender != 0 && *opts.Gender != 1 {
			return nil, &idnum.ValidationError{Field: "gender", Reason: "must be 0 (female) or 1 (male)"}
		}
		gender = *opts.Gender
	}

	birthDate := opts.BirthDate
	switch {
	case birthDate != "":
		// Validated by Encode below.
	case opts.Age != nil:
		birthDate, err = idnum.BirthDateForAge(*opts.Age, g.rng, g.now())
		if err != nil {
			return nil, err
		}
	default:
		birthDate = idnum.RandomBirthDate(g.rng)
	}

	number, err := idnum.Encode(district, birthDate, gender, g.rng)
	if err != nil {
		return nil, err
	}
	info, err := idnum.Decode(number)
	if err != nil {
		return nil, err
	}

	chain := g.resolver.HierarchyChain(district, g.rng)
	name := g.field("name", func(s FieldStrategy) (string, error) { return s.FullName(g.rng, gender) })

	return &Record{
		ID:         uuid.NewString(),
		Name:       name,
		Gender:     gender,
		IDNumber:   number,
		BirthDate:  info.BirthDateISO(),
		Age:        info.Age,
		RegionCode: district,
		Region:     strings.Join(chain, ""),
		Address:    g.field("address", func(s FieldStrategy) (string, error) { return s.Address(g.rng, chain) }),
		Phone:      g.field("phone", func(s FieldStrategy) (string, error) { return s.Phone(g.rng) }),
		Email:      g.field("email", func(s FieldStrategy) (string, error) { return s.Email(g.rng, name) }),
	}, nil
}

// GenerateBatch produces count records. progress, when non-nil, is invoked
// after every record with (done, total).
func (g *Generator) GenerateBatch(count int, opts Options, progress func(done, total int)) ([]*Record, error) {
	if count <= 0 {
		return nil, &idnum.ValidationError{Field: "count", Reason: "must be a positive integer"}
	}
	records := make([]*Record, 0, count)
	for i := 0; i < count; i++ {
		rec, err := g.Generate(opts)
		if err != nil {
			return nil, fmt.Errorf("record %d/%d: %w", i+1, count, err)
		}
		records = append(records, rec)
		if progress != nil {
			progress(i+1, count)
		}
	}
	return records, nil
}

// regionCode turns the options into a 6-digit starting code: explicit code,
// resolved name, or a random concrete district.
func (g *Generator) regionCode(opts Options) (string, error) {
	if opts.RegionCode != "" {
		return opts.RegionCode, nil
	}
	if opts.RegionName != "" {
		code, err := g.resolver.CodeForName(opts.RegionName)
		if err == nil {
			return code, nil
		}
		g.logger.Warn("region name not resolved, using fallback",
			"name", opts.RegionName, "fallback", g.fallback)
		return g.fallback, nil
	}
	return g.randomDistrict(), nil
}

// randomDistrict draws from the memoized pool of concrete district codes.
// The pool is derived state, built at most once per generator.
func (g *Generator) randomDistrict() string {
	if g.districtPool == nil {
		for _, d := range g.hierarchy.ConcreteDistricts() {
			g.districtPool = append(g.districtPool, d.Code)
		}
	}
	if len(g.districtPool) == 0 {
		return g.fallback
	}
	return g.districtPool[g.rng.Intn(len(g.districtPool))]
}

// field runs one strategy call, falling back to the default strategy when
// the configured one fails.
func (g *Generator) field(name string, call func(FieldStrategy) (string, error)) string {
	v, err := call(g.strategy)
	if err == nil {
		return v
	}
	g.logger.Warn("field strategy failed, using default", "field", name, "error", err)
	v, err = call(g.defaults)
	if err != nil {
		// The default strategy never errors; keep the record usable anyway.
		return ""
	}
	return v
}
