package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviders_FetchesFullList(t *testing.T) {
	var path string
	c := newTestClient(t, &fakeSession{token: "abc"}, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`[
			{"_id":"p1","name":"Dr. Ali","role":"Doctor","specialization":"Cardiology"},
			{"_id":"p2","name":"Nour","role":"Nurse","specialization":"ICU"}
		]`))
	})

	got, err := c.Providers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/providers/", path)
	require.Len(t, got, 2)
	assert.Equal(t, "Doctor", got[0].Role)
}

func TestDoctorByID(t *testing.T) {
	c := newTestClient(t, &fakeSession{token: "abc"}, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/doctors/p1", r.URL.Path)
		w.Write([]byte(`{"_id":"p1","name":"Dr. Ali"}`))
	})

	p, err := c.DoctorByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Ali", p.Name)
}

func TestDoctorsBySpecialization_EscapesPathSegment(t *testing.T) {
	var path string
	c := newTestClient(t, &fakeSession{token: "abc"}, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		w.Write([]byte(`[]`))
	})

	_, err := c.DoctorsBySpecialization(context.Background(), "Internal Medicine")
	require.NoError(t, err)
	assert.Equal(t, "/doctors/specialization/Internal%20Medicine", path)
}

func TestProviders_ErrorsPropagate(t *testing.T) {
	c := newTestClient(t, &fakeSession{}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Providers(context.Background())
	require.Error(t, err)
	assert.Equal(t, "failed to fetch providers", err.Error())
}
