// Package history remembers commands entered in the interactive shell and
// suggests them back, most used first.
package history

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vidcat/vidcat/filesystem"
	"github.com/vidcat/vidcat/key"
	"github.com/vidcat/vidcat/where"
	"golang.org/x/exp/slices"
)

// Record is one remembered command line and how often it was entered.
type Record struct {
	Rank int    `json:"rank"`
	Line string `json:"line"`
}

var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Remember records a command line, or bumps its rank if it was seen before.
// It does nothing when history.save is disabled.
func Remember(line string) error {
	if !viper.GetBool(key.HistorySave) {
		return nil
	}

	line = sanitize(line)
	if line == "" {
		return nil
	}

	records, err := load()
	if err != nil {
		return err
	}

	if record, ok := records[line]; ok {
		record.Rank++
	} else {
		records[line] = &Record{Rank: 1, Line: line}
	}

	return cacher.Set(records)
}

// Get returns every remembered command, most used first.
func Get() ([]*Record, error) {
	records, err := load()
	if err != nil {
		return nil, err
	}
	return ranked(lo.Values(records)), nil
}

// Suggest returns the best remembered command for a partial input.
func Suggest(partial string) mo.Option[string] {
	suggestions := SuggestMany(partial)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered commands fuzzily matching partial, most used first.
// It returns nothing when shell.suggestions is disabled.
func SuggestMany(partial string) []string {
	if !viper.GetBool(key.ShellSuggestions) {
		return []string{}
	}

	records, err := load()
	if err != nil {
		return []string{}
	}

	partial = sanitize(partial)
	matched := lo.Filter(lo.Values(records), func(r *Record, _ int) bool {
		return fuzzy.MatchFold(partial, r.Line)
	})

	return lo.Map(ranked(matched), func(r *Record, _ int) string {
		return r.Line
	})
}

func load() (map[string]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

func ranked(records []*Record) []*Record {
	slices.SortFunc(records, func(a, b *Record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Line, b.Line)
	})
	return records
}

// sanitize collapses inner whitespace so "PLAY  x" and "PLAY x" count as one command.
func sanitize(line string) string {
	return strings.Join(strings.Fields(line), " ")
}
