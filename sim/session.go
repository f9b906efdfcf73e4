// Package sim runs scripted damage sessions against a single body.
package sim

import (
	"bufio"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"strings"

	"github.com/buildkite/shellwords"
	"github.com/pkg/errors"

	seaofstars "github.com/tenth-speed-writer/sea-of-stars-tech-demo"
	"github.com/tenth-speed-writer/sea-of-stars-tech-demo/anatomy"
	"github.com/tenth-speed-writer/sea-of-stars-tech-demo/catalog"
	"github.com/tenth-speed-writer/sea-of-stars-tech-demo/lang"
	"github.com/tenth-speed-writer/sea-of-stars-tech-demo/storage"
)

var errNoStore = errors.New("no database configured")

// Session owns one body and the collaborators needed to damage, reset and persist it.
type Session struct {
	id        string
	blueprint string
	body      *anatomy.Body
	catalog   *catalog.Catalog
	store     *storage.Store
	rng       *rand.Rand
	audit     *storage.AuditLogger
	out       io.Writer
}

// NewSeed returns a random seed for sessions configured without one.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "read random seed")
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewRand returns the damage RNG for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewSession starts a session on body id. If store is non-nil and holds id,
// the stored body is resumed, otherwise a fresh body is built from blueprint.
// A nil audit disables the combat audit log.
func NewSession(ctx context.Context, id, blueprint string, cat *catalog.Catalog, store *storage.Store, audit *storage.AuditLogger, rng *rand.Rand, out io.Writer) (*Session, error) {
	s := &Session{
		id:        id,
		blueprint: blueprint,
		catalog:   cat,
		store:     store,
		audit:     audit,
		rng:       rng,
		out:       out,
	}
	if store != nil {
		err := s.Load(ctx)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, seaofstars.ErrNotFound) {
			return nil, err
		}
	}
	if err := s.Reset(blueprint); err != nil {
		return nil, err
	}
	return s, nil
}

// Body returns the current body.
func (s *Session) Body() *anatomy.Body {
	return s.body
}

// Reset replaces the body with a fresh one built from blueprint.
func (s *Session) Reset(blueprint string) error {
	body, err := s.catalog.Instantiate(blueprint)
	if err != nil {
		return err
	}
	s.blueprint = blueprint
	s.body = body
	fmt.Fprintf(s.out, "%s is a fresh %s with %s\n", s.id, blueprint, s.describeLimbs())
	if s.audit != nil {
		s.audit.Log(s.id, storage.AuditEventReset, storage.AuditReset{
			Blueprint: blueprint,
			Limbs:     len(body.LimbNames()),
			Integrity: body.Integrity(),
		})
	}
	return nil
}

// Hit applies damage to the body and reports the outcome.
func (s *Session) Hit(damage anatomy.Damage) (*anatomy.DamageResult, error) {
	result, err := s.body.TakeDamage(s.rng, damage)
	if err != nil {
		return nil, err
	}
	var struck []string
	for _, h := range result.Hits {
		if !h.Overflow {
			struck = append(struck, h.PartName)
		}
	}
	fmt.Fprintf(s.out, "%v struck %s through %s\n", damage, result.Limb, lang.Enumerator{}.Do(struck...))
	if n := len(result.Destroyed); n > 0 {
		fmt.Fprintf(s.out, "%s destroyed: %s\n", lang.Card(n, "limb"), lang.Enumerator{}.Do(result.Destroyed...))
	}
	empty := s.body.IsEmpty()
	if empty {
		fmt.Fprintf(s.out, "%s has no limbs left\n", s.id)
	}
	if s.audit != nil {
		s.audit.LogResult(s.id, s.blueprint, damage, result, empty)
	}
	return result, nil
}

// Save persists the body under the session id.
func (s *Session) Save(ctx context.Context) error {
	if s.store == nil {
		return errNoStore
	}
	if err := s.store.Save(ctx, s.id, s.blueprint, s.body); err != nil {
		return err
	}
	log.Printf("saved %q (%s)", s.id, s.blueprint)
	return nil
}

// Load replaces the body with the one stored under the session id.
func (s *Session) Load(ctx context.Context) error {
	if s.store == nil {
		return errNoStore
	}
	blueprint, body, err := s.store.Load(ctx, s.id)
	if err != nil {
		return err
	}
	s.blueprint = blueprint
	s.body = body
	fmt.Fprintf(s.out, "%s resumed as a %s with %s\n", s.id, blueprint, s.describeLimbs())
	return nil
}

func (s *Session) describeLimbs() string {
	return fmt.Sprintf("%s, %.1f integrity", lang.Card(len(s.body.LimbNames()), "limb"), s.body.Integrity())
}

// Exec runs a single command line. Blank lines and lines starting with # are ignored.
func (s *Session) Exec(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	parts, err := shellwords.SplitPosix(line)
	if err != nil {
		return seaofstars.Validationf("parsing %q: %v", line, err)
	}
	if len(parts) == 0 {
		return nil
	}
	if parts[0] == "help" {
		printHelp(s)
		return nil
	}
	cmd, found := commands[parts[0]]
	if !found {
		return seaofstars.Validationf("unknown command %q, try help", parts[0])
	}
	return cmd.handler(ctx, s, parts[1:])
}

// Run executes every line of r. Failing commands are reported and skipped.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Exec(ctx, scanner.Text()); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			log.Printf("executing %q: %v", scanner.Text(), err)
		}
	}
	return errors.WithStack(scanner.Err())
}
