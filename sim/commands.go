package sim

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rodaine/table"

	seaofstars "github.com/tenth-speed-writer/sea-of-stars-tech-demo"
	"github.com/tenth-speed-writer/sea-of-stars-tech-demo/anatomy"
)

// commandHandler runs a command with the arguments following its name.
type commandHandler func(ctx context.Context, s *Session, args []string) error

// command defines a session command with its handler and help text.
type command struct {
	handler commandHandler
	usage   string
	help    string
}

const repeatUsage = "repeat N hit ..."

// commands maps command names to their handlers. "help" is handled by Exec.
var commands = map[string]command{
	"hit":    {handler: handleHit, usage: "hit [impact=N] [shear=N] [corrosive=N] [energy=N]", help: "Strike the body once"},
	"repeat": {handler: handleRepeat, usage: repeatUsage, help: "Strike up to N times, stopping once no limbs remain"},
	"status": {handler: handleStatus, usage: "status", help: "Show integrity of every remaining part"},
	"reset":  {handler: handleReset, usage: "reset [blueprint]", help: "Replace the body with a fresh one"},
	"save":   {handler: handleSave, usage: "save", help: "Save the body to the database"},
	"load":   {handler: handleLoad, usage: "load", help: "Load the body from the database"},
	"list":   {handler: handleList, usage: "list", help: "List bodies in the database"},
}

// parseDamage parses type=magnitude arguments.
func parseDamage(args []string) (anatomy.Damage, error) {
	var d anatomy.Damage
	for _, arg := range args {
		name, value, found := strings.Cut(arg, "=")
		if !found {
			return anatomy.Damage{}, seaofstars.Validationf("expected type=magnitude, got %q", arg)
		}
		t, err := anatomy.ParseDamageType(strings.ToLower(name))
		if err != nil {
			return anatomy.Damage{}, err
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return anatomy.Damage{}, seaofstars.Validationf("bad %v magnitude %q", t, value)
		}
		d = d.With(t, d.Of(t)+v)
	}
	if err := d.Validate(); err != nil {
		return anatomy.Damage{}, err
	}
	return d, nil
}

func handleHit(ctx context.Context, s *Session, args []string) error {
	damage, err := parseDamage(args)
	if err != nil {
		return err
	}
	_, err = s.Hit(damage)
	return err
}

func handleRepeat(ctx context.Context, s *Session, args []string) error {
	if len(args) < 2 || args[1] != "hit" {
		return seaofstars.Validationf("usage: %s", repeatUsage)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return seaofstars.Validationf("repeat count must be a positive integer, got %q", args[0])
	}
	damage, err := parseDamage(args[2:])
	if err != nil {
		return err
	}
	for i := 0; i < n && !s.body.IsEmpty(); i++ {
		if _, err := s.Hit(damage); err != nil {
			return err
		}
	}
	return nil
}

func handleStatus(ctx context.Context, s *Session, args []string) error {
	fmt.Fprintf(s.out, "%s (%s): %s\n", s.id, s.blueprint, s.describeLimbs())
	if s.body.IsEmpty() {
		return nil
	}
	tbl := table.New("Limb", "Layer", "Part", "Integrity", "Max").WithWriter(s.out)
	for _, limb := range s.body.Limbs() {
		for li, layer := range limb.Layers {
			for _, part := range layer {
				tbl.AddRow(limb.Name, li, part.Name, fmt.Sprintf("%.2f", part.Integrity), fmt.Sprintf("%.2f", part.MaxIntegrity))
			}
		}
	}
	tbl.Print()
	return nil
}

func handleReset(ctx context.Context, s *Session, args []string) error {
	blueprint := s.blueprint
	if len(args) > 0 {
		blueprint = args[0]
	}
	return s.Reset(blueprint)
}

func handleSave(ctx context.Context, s *Session, args []string) error {
	return s.Save(ctx)
}

func handleLoad(ctx context.Context, s *Session, args []string) error {
	return s.Load(ctx)
}

func handleList(ctx context.Context, s *Session, args []string) error {
	if s.store == nil {
		return errNoStore
	}
	summaries, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	tbl := table.New("ID", "Blueprint", "Updated").WithWriter(s.out)
	for _, sum := range summaries {
		tbl.AddRow(sum.ID, sum.Blueprint, sum.Updated().Format("2006-01-02 15:04:05"))
	}
	tbl.Print()
	return nil
}

func printHelp(s *Session) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	tbl := table.New("Command", "Description").WithWriter(s.out)
	for _, name := range names {
		tbl.AddRow(commands[name].usage, commands[name].help)
	}
	tbl.AddRow("help", "Show this help")
	tbl.Print()
}
