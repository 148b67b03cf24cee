package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oncall-app/oncall-cli/internal/common"
)

func TestCheckSession_DropsStateOnUnauthorized(t *testing.T) {
	silencePrintln(t)

	a := &App{signed: true, civilID: "123456"}
	err := a.checkSession(fmt.Errorf("fetch: %w", common.ErrUnauthorized))

	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "", a.civilID)
}

func TestCheckSession_KeepsStateOnOtherErrors(t *testing.T) {
	silencePrintln(t)

	a := &App{signed: true, civilID: "123456"}
	err := a.checkSession(errors.New("server hiccup"))

	assert.Error(t, err)
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "123456", a.civilID)
}

func TestGetStatus(t *testing.T) {
	assert.Equal(t, "", (&App{}).getStatus())
	assert.Equal(t, "(signed in)", (&App{signed: true}).getStatus())
	assert.Equal(t, "(123456)", (&App{signed: true, civilID: "123456"}).getStatus())
}
