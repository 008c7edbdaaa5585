package tags

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(md *Metadata) Source {
	return SourceFunc(func(string) (*Metadata, error) {
		cp := *md
		return &cp, nil
	})
}

func failing(err error) Source {
	return SourceFunc(func(string) (*Metadata, error) { return nil, err })
}

func TestChain_FirstSuccessWins(t *testing.T) {
	c := Chain{
		failing(errors.New("boom")),
		fixed(&Metadata{Title: "First", Album: ""}),
		fixed(&Metadata{Title: "Second", Album: "Filled"}),
	}

	md, err := c.Read("x.mp3")
	require.NoError(t, err)
	assert.Equal(t, "First", md.Title)
	assert.Equal(t, "Filled", md.Album)
}

func TestChain_AllFail(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	_, err := Chain{failing(errA), failing(errB)}.Read("x.mp3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errA))
}

func TestChain_Empty(t *testing.T) {
	_, err := Chain{}.Read("x.mp3")
	assert.True(t, errors.Is(err, ErrNoTags))
}
