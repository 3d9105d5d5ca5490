package main

import (
	"io"
	"slices"
	"strings"

	"github.com/ansel1/merry"
	"github.com/g-m-twostay/ordered/Maps"
	"github.com/g-m-twostay/ordered/Sets"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var ErrCorrupt = merry.New("tree corrupt")

type report struct {
	Size  int   `yaml:"size"`
	Order []any `yaml:"order"`
	Tree  any   `yaml:"tree"`
}

// buildSet loads c.Keys then args, and deletes c.Delete then deletes.
func buildSet(c *Config, args, deletes []string, log logrus.FieldLogger) *Sets.OrderedSet[any] {
	s := Sets.NewDynamic()
	for _, k := range c.Keys {
		s.Add(k)
	}
	for _, a := range args {
		s.Add(parseArg(a))
	}
	applyDeletes(s, c.Delete, deletes, log)
	return s
}

// buildMap loads c.Pairs then key=value args, and deletes c.Delete then deletes.
func buildMap(c *Config, args, deletes []string, log logrus.FieldLogger) (*Maps.OrderedMap[any, any], error) {
	m := Maps.NewDynamic[any]()
	for _, p := range c.Pairs {
		m.Set(p.Key, p.Value)
	}
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return nil, merry.Errorf("argument %q is not key=value", a)
		}
		m.Set(parseArg(k), v)
	}
	applyDeletes(m, c.Delete, deletes, log)
	return m, nil
}

type deleter interface {
	Delete(any) bool
}

// applyDeletes removes the config keys, then the command line keys, from c.
func applyDeletes(c deleter, keys []any, args []string, log logrus.FieldLogger) {
	del := func(k any) {
		log.WithFields(logrus.Fields{"key": k, "found": c.Delete(k)}).Debug("delete")
	}
	for _, k := range keys {
		del(k)
	}
	for _, a := range args {
		del(parseArg(a))
	}
}

type dumpable interface {
	Size() int
	Corrupt() bool
}

func writeReport(w io.Writer, c dumpable, order []any, tree any, check bool) error {
	if check && c.Corrupt() {
		return merry.Here(ErrCorrupt)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report{c.Size(), order, tree}); err != nil {
		return merry.Prepend(err, "encode report")
	}
	return enc.Close()
}

func dumpSet(w io.Writer, s *Sets.OrderedSet[any], check bool) error {
	return writeReport(w, s, slices.Collect(s.Values()), s.Export(), check)
}

func dumpMap(w io.Writer, m *Maps.OrderedMap[any, any], check bool) error {
	return writeReport(w, m, slices.Collect(m.Keys()), m.Export(), check)
}
