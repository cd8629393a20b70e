package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCollectionUID(t *testing.T) {
	uid := NewCollectionUID()

	assert.Equal(t, 33, len(uid))
	assert.Equal(t, byte('c'), uid[0])
	assert.NotContains(t, uid, "-")
	assert.NotEqual(t, uid, NewCollectionUID())
}

func TestNewAPIToken(t *testing.T) {
	token := NewAPIToken()

	assert.Equal(t, 64, len(token))
	assert.NotContains(t, token, "-")
	assert.NotEqual(t, token, NewAPIToken())
}
