package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointLoadRecordsVariant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{
			"records": [
				{"university": "NUS", "course": "CS", "course_category": "Computing",
				 "year": 2021, "employment_rate_overall": 95.5, "gross_monthly_median": 5000}
			],
			"summary": {"avg_salary": 4200, "top_university": "NUS", "top_degree": "CS"}
		}`))
	}))
	defer srv.Close()

	res, err := NewEndpoint(srv.URL, nil).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "NUS", res.Records[0].University)
	assert.Equal(t, 2021, res.Records[0].Year)
	require.NotNil(t, res.Summary)
	assert.Equal(t, 4200.0, res.Summary.AvgSalary)
	assert.Equal(t, srv.URL, res.Origin)
}

func TestEndpointLoadSalaryTrendsVariant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"salary_trends": [
				{"university": "NTU", "course": "IS", "course_category": "Computing",
				 "year": 2020, "gross_monthly_median": 4300}
			]
		}`))
	}))
	defer srv.Close()

	res, err := NewEndpoint(srv.URL, nil).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "NTU", res.Records[0].University)
	assert.Nil(t, res.Summary)
}

func TestEndpointLoadRecordsWinOverTrends(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"records": [{"university": "NUS", "year": 2021}],
			"salary_trends": [{"university": "NTU", "year": 2020}]
		}`))
	}))
	defer srv.Close()

	res, err := NewEndpoint(srv.URL, nil).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "NUS", res.Records[0].University)
}

func TestEndpointLoadErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewEndpoint(srv.URL, nil).Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"records": [`))
		}))
		defer srv.Close()

		_, err := NewEndpoint(srv.URL, nil).Load(context.Background())
		require.Error(t, err)
	})

	t.Run("unreachable host", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := NewEndpoint(srv.URL, nil).Load(context.Background())
		require.Error(t, err)
	})
}

func TestEndpointLoadHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewEndpoint(srv.URL, nil).Load(ctx)
	require.Error(t, err)
}
