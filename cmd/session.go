package cmd

import (
	"io"
	"math/rand"
	"time"

	"github.com/spf13/viper"
	"github.com/vidcat/vidcat/command"
	"github.com/vidcat/vidcat/key"
	"github.com/vidcat/vidcat/library"
	"github.com/vidcat/vidcat/player"
)

// newDispatcher builds a session over the configured library, writing to out.
func newDispatcher(out io.Writer) (*command.Dispatcher, error) {
	lib, err := library.Load(viper.GetString(key.LibraryPath))
	if err != nil {
		return nil, err
	}

	seed := viper.GetInt64(key.PlayerRandomSeed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p := player.New(lib, player.Options{
		Out:  out,
		Rand: rand.New(rand.NewSource(seed)),
	})
	return command.New(p, out), nil
}
