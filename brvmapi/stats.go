package brvmapi

import (
	"context"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	brvmwatch "github.com/esmelobi/brvm-watch"
)

// Stats returns the backend database counters. The stats payload is the one
// ad-hoc shape of the API, assembled from loose SQL counters, so it is
// probed path by path instead of being bound to a struct: a missing or
// renamed counter degrades to a zero value instead of failing the whole
// fetch.
func (c *Client) Stats(ctx context.Context) (brvmwatch.Stats, error) {
	var jobj any
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &jobj); err != nil {
		return brvmwatch.Stats{}, err
	}
	return brvmwatch.Stats{
		Seances:     intAt(jobj, "$.nb_seances"),
		Cours:       intAt(jobj, "$.nb_cours"),
		Conseils:    intAt(jobj, "$.nb_conseils"),
		FirstSeance: stringAt(jobj, "$.premiere_seance"),
		LastSeance:  stringAt(jobj, "$.derniere_seance"),
	}, nil
}

func intAt(jobj any, path string) int64 {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0
	}
	// JSON numbers decode as float64.
	if v, ok := jval.(float64); ok {
		return int64(v)
	}
	return 0
}

func stringAt(jobj any, path string) string {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return ""
	}
	v, _ := jval.(string)
	return v
}
