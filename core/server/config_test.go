package server_test

import (
	"testing"
	"time"

	"server-relay/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Addr(t *testing.T) {
	c := server.Config{Port: "5000"}
	assert.Equal(t, ":5000", c.Addr())
}

func TestConfig_ReadTimeout(t *testing.T) {
	c := server.Config{ReadTimeoutSeconds: 3}
	assert.Equal(t, 3*time.Second, c.ReadTimeout())
}
