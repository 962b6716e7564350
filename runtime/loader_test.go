package runtime

import (
	"log/slog"
	"testing"
	"testing/fstest"
	"zenchat/errors"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestCensoredLoader_LoadAll(t *testing.T) {
	req := require.New(t)

	t.Run("should merge languages into sorted unique words", func(t *testing.T) {
		files := fstest.MapFS{
			"words/en.txt":    {Data: []byte("Damn\r\nhell\n\n  shit \n")},
			"words/fr.txt":    {Data: []byte("merde\nputain\ndamn\n")},
			"words/README.md": {Data: []byte("not a list")},
			"words/nested/x":  {Data: []byte("ignored")},
		}

		data, err := NewCensoredLoader(files).LoadAll("words")

		req.NoError(err)
		req.Equal([]string{"damn", "hell", "merde", "putain", "shit"}, data.Words)
		req.Equal([]string{"en", "fr"}, data.Languages)
	})

	t.Run("should fail on empty lists", func(t *testing.T) {
		files := fstest.MapFS{"words/en.txt": {Data: []byte("\n \n")}}

		_, err := NewCensoredLoader(files).LoadAll("words")

		req.ErrorIs(err, errors.ErrEmptyWords)
	})

	t.Run("should fail on a missing folder", func(t *testing.T) {
		_, err := NewCensoredLoader(fstest.MapFS{}).LoadAll("words")
		req.Error(err)
	})
}

func TestLoadModerator_From_Embedded_Lists(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	moderator, err := LoadModerator(log, '*')

	req.NoError(err)
	censored, words := moderator.Censor("oh merde")
	req.Equal("oh *****", censored)
	req.Equal([]string{"merde"}, words)
}
