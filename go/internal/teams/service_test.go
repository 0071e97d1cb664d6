package teams

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

var _ = ginkgo.Describe("Service", func() {
	var (
		repo   *memoryRepository
		pinger *stubPinger
		mux    *http.ServeMux
	)

	do := func(method, target, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, target, nil)
		} else {
			req = httptest.NewRequest(method, target, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		return rec
	}

	decode := func(rec *httptest.ResponseRecorder, v interface{}) {
		ExpectWithOffset(1, json.Unmarshal(rec.Body.Bytes(), v)).To(Succeed())
	}

	createTeam := func(body string) TeamResponse {
		rec := do(http.MethodPost, "/api/teams", body)
		ExpectWithOffset(1, rec.Code).To(Equal(http.StatusCreated))
		var team TeamResponse
		decode(rec, &team)
		return team
	}

	ginkgo.BeforeEach(func() {
		repo = newMemoryRepository()
		pinger = &stubPinger{}
		clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
		app := NewApp(repo, clock)
		health := NewHealthChecker(pinger, "teams-service", clock)
		svc := NewService(app, health, ServiceConfig{Name: "teams-service"})
		mux = http.NewServeMux()
		svc.RegisterRoutes(mux)
	})

	ginkgo.Describe("POST /api/teams", func() {
		ginkgo.It("creates a team with defaults", func() {
			rec := do(http.MethodPost, "/api/teams", `{"name":"Lakers","city":"Los Angeles"}`)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(rec.Header().Get("Location")).To(Equal("/api/teams/1"))
			var team TeamResponse
			decode(rec, &team)
			Expect(team.ID).To(BeEquivalentTo(1))
			Expect(team.Active).To(BeTrue())
			Expect(*team.PrimaryColor).To(Equal("#3498db"))
			Expect(*team.SecondaryColor).To(Equal("#ffffff"))
			Expect(team.CreatedAt).To(Equal(team.UpdatedAt))
		})

		ginkgo.It("returns 409 for a duplicate active name", func() {
			createTeam(`{"name":"Lakers"}`)

			rec := do(http.MethodPost, "/api/teams", `{"name":"lakers"}`)
			Expect(rec.Code).To(Equal(http.StatusConflict))
			var resp ErrorResponse
			decode(rec, &resp)
			Expect(resp.Status).To(Equal(http.StatusConflict))
			Expect(resp.Error).To(Equal("Conflict"))
			Expect(resp.Path).To(Equal("/api/teams"))
		})

		ginkgo.DescribeTable("rejects invalid bodies with 400",
			func(body, field string) {
				rec := do(http.MethodPost, "/api/teams", body)
				Expect(rec.Code).To(Equal(http.StatusBadRequest))
				var resp ErrorResponse
				decode(rec, &resp)
				Expect(resp.FieldErrors).To(ContainElement(HaveField("Field", field)))
			},
			ginkgo.Entry("missing name", `{"city":"Boston"}`, "name"),
			ginkgo.Entry("blank name", `{"name":"   "}`, "name"),
			ginkgo.Entry("short name", `{"name":"A"}`, "name"),
			ginkgo.Entry("long name", `{"name":"`+strings.Repeat("x", 101)+`"}`, "name"),
			ginkgo.Entry("bad color", `{"name":"Lakers","primaryColor":"purple"}`, "primaryColor"),
			ginkgo.Entry("long description", `{"name":"Lakers","description":"`+strings.Repeat("d", 501)+`"}`, "description"),
			ginkgo.Entry("unknown field", `{"name":"Lakers","mascot":"x"}`, "body"),
			ginkgo.Entry("malformed json", `{"name":`, "body"),
			ginkgo.Entry("founded year past int32", `{"name":"Hawks","foundedYear":3000000000}`, "foundedYear"),
			ginkgo.Entry("founded year too early", `{"name":"Hawks","foundedYear":42}`, "foundedYear"),
		)

		ginkgo.It("accepts three digit colors", func() {
			team := createTeam(`{"name":"Lakers","primaryColor":"#abc"}`)
			Expect(*team.PrimaryColor).To(Equal("#abc"))
		})
	})

	ginkgo.Describe("GET /api/teams/{id}", func() {
		ginkgo.It("returns the team", func() {
			created := createTeam(`{"name":"Lakers"}`)

			rec := do(http.MethodGet, "/api/teams/1", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			var team TeamResponse
			decode(rec, &team)
			Expect(team.Name).To(Equal(created.Name))
		})

		ginkgo.It("returns 404 for an unknown id", func() {
			Expect(do(http.MethodGet, "/api/teams/99", "").Code).To(Equal(http.StatusNotFound))
		})

		ginkgo.It("returns 400 for a non-numeric id", func() {
			Expect(do(http.MethodGet, "/api/teams/abc", "").Code).To(Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("GET /api/teams/name/{name}", func() {
		ginkgo.It("matches case-insensitively", func() {
			createTeam(`{"name":"Golden State Warriors"}`)

			rec := do(http.MethodGet, "/api/teams/name/golden%20state%20warriors", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		ginkgo.It("returns 404 when absent", func() {
			Expect(do(http.MethodGet, "/api/teams/name/nobody", "").Code).To(Equal(http.StatusNotFound))
		})
	})

	ginkgo.Describe("PUT /api/teams/{id}", func() {
		ginkgo.It("applies a partial update", func() {
			createTeam(`{"name":"Lakers","city":"Los Angeles"}`)

			rec := do(http.MethodPut, "/api/teams/1", `{"coach":"JJ Redick","city":null}`)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var team TeamResponse
			decode(rec, &team)
			Expect(*team.Coach).To(Equal("JJ Redick"))
			Expect(*team.City).To(Equal("Los Angeles"))
			Expect(team.Name).To(Equal("Lakers"))
		})

		ginkgo.It("returns 409 when renaming onto another team", func() {
			createTeam(`{"name":"Lakers"}`)
			createTeam(`{"name":"Celtics"}`)

			Expect(do(http.MethodPut, "/api/teams/2", `{"name":"LAKERS"}`).Code).To(Equal(http.StatusConflict))
		})

		ginkgo.It("returns 400 for an empty name", func() {
			createTeam(`{"name":"Lakers"}`)
			Expect(do(http.MethodPut, "/api/teams/1", `{"name":""}`).Code).To(Equal(http.StatusBadRequest))
		})

		ginkgo.It("returns 404 for an unknown id", func() {
			Expect(do(http.MethodPut, "/api/teams/5", `{"coach":"x"}`).Code).To(Equal(http.StatusNotFound))
		})

		ginkgo.It("returns 400 for a founded year outside the stored range", func() {
			createTeam(`{"name":"Hawks","foundedYear":1946}`)

			rec := do(http.MethodPut, "/api/teams/1", `{"foundedYear":3000000000}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			var resp ErrorResponse
			decode(rec, &resp)
			Expect(resp.FieldErrors).To(ContainElement(FieldError{Field: "foundedYear", Message: "must be at most 9999"}))

			rec = do(http.MethodGet, "/api/teams/1", "")
			var team TeamResponse
			decode(rec, &team)
			Expect(*team.FoundedYear).To(Equal(1946))
		})
	})

	ginkgo.Describe("DELETE /api/teams/{id}", func() {
		ginkgo.It("returns 204 then 404", func() {
			createTeam(`{"name":"Lakers"}`)

			rec := do(http.MethodDelete, "/api/teams/1", "")
			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(rec.Body.Len()).To(BeZero())
			Expect(do(http.MethodGet, "/api/teams/1", "").Code).To(Equal(http.StatusNotFound))
			Expect(do(http.MethodDelete, "/api/teams/1", "").Code).To(Equal(http.StatusNotFound))
		})
	})

	ginkgo.Describe("activation", func() {
		ginkgo.It("deactivates and reactivates idempotently", func() {
			createTeam(`{"name":"Lakers"}`)

			for range 2 {
				rec := do(http.MethodPatch, "/api/teams/1/deactivate", "")
				Expect(rec.Code).To(Equal(http.StatusOK))
				var team TeamResponse
				decode(rec, &team)
				Expect(team.Active).To(BeFalse())
			}

			rec := do(http.MethodGet, "/api/teams/active", "")
			var active []TeamResponse
			decode(rec, &active)
			Expect(active).To(BeEmpty())

			rec = do(http.MethodPatch, "/api/teams/1/activate", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		ginkgo.It("returns 409 when another active team holds the name", func() {
			createTeam(`{"name":"Lakers"}`)
			do(http.MethodPatch, "/api/teams/1/deactivate", "")
			createTeam(`{"name":"Lakers"}`)

			Expect(do(http.MethodPatch, "/api/teams/1/activate", "").Code).To(Equal(http.StatusConflict))
		})
	})

	ginkgo.Describe("listing", func() {
		ginkgo.BeforeEach(func() {
			createTeam(`{"name":"Lakers","city":"Los Angeles","foundedYear":1947}`)
			createTeam(`{"name":"Clippers","city":"Los Angeles","foundedYear":1970}`)
			createTeam(`{"name":"Celtics","city":"Boston","foundedYear":1946}`)
			do(http.MethodPatch, "/api/teams/3/deactivate", "")
		})

		ginkgo.It("pages with the envelope", func() {
			rec := do(http.MethodGet, "/api/teams?size=2&page=0", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			var page TeamPageResponse
			decode(rec, &page)
			Expect(page.Teams).To(HaveLen(2))
			Expect(page.Total).To(BeEquivalentTo(3))
			Expect(page.TotalPages).To(Equal(2))
			Expect(page.HasMore).To(BeTrue())
		})

		ginkgo.It("combines filters", func() {
			rec := do(http.MethodGet, "/api/teams?city=los&active=true&name=clip", "")
			var page TeamPageResponse
			decode(rec, &page)
			Expect(page.Teams).To(HaveLen(1))
			Expect(page.Teams[0].Name).To(Equal("Clippers"))
		})

		ginkgo.It("sorts by name descending", func() {
			rec := do(http.MethodGet, "/api/teams?sort=name,desc", "")
			var page TeamPageResponse
			decode(rec, &page)
			Expect(page.Teams[0].Name).To(Equal("Lakers"))
		})

		ginkgo.DescribeTable("returns an empty page far past the end",
			func(target string) {
				rec := do(http.MethodGet, target, "")
				Expect(rec.Code).To(Equal(http.StatusOK))
				var page TeamPageResponse
				decode(rec, &page)
				Expect(page.Teams).To(BeEmpty())
				Expect(page.HasMore).To(BeFalse())
				Expect(page.Total).To(BeNumerically(">", 0))
			},
			ginkgo.Entry("active only", "/api/teams?active=true&page=110000000"),
			ginkgo.Entry("filtered", "/api/teams?city=los&page=110000000"),
			ginkgo.Entry("page near max int", "/api/teams?page=9223372036854775807&size=100"),
		)

		ginkgo.It("clamps the page size", func() {
			rec := do(http.MethodGet, "/api/teams?size=500", "")
			var page TeamPageResponse
			decode(rec, &page)
			Expect(page.Size).To(Equal(MaxPageSize))
		})

		ginkgo.DescribeTable("rejects bad query parameters",
			func(target string) {
				Expect(do(http.MethodGet, target, "").Code).To(Equal(http.StatusBadRequest))
			},
			ginkgo.Entry("negative page", "/api/teams?page=-1"),
			ginkgo.Entry("zero size", "/api/teams?size=0"),
			ginkgo.Entry("bad active", "/api/teams?active=maybe"),
			ginkgo.Entry("unknown sort field", "/api/teams?sort=mascot"),
			ginkgo.Entry("bad sort direction", "/api/teams?sort=name,sideways"),
			ginkgo.Entry("missing search term", "/api/teams/search"),
			ginkgo.Entry("bad recent limit", "/api/teams/recent?limit=0"),
			ginkgo.Entry("missing founded bound", "/api/teams/founded?from=1900"),
			ginkgo.Entry("inverted founded range", "/api/teams/founded?from=2000&to=1900"),
			ginkgo.Entry("founded bound past int32", "/api/teams/founded?from=1900&to=3000000000"),
		)

		ginkgo.It("searches name and city including inactive teams", func() {
			rec := do(http.MethodGet, "/api/teams/search?q=BOSTON", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			var page TeamPageResponse
			decode(rec, &page)
			Expect(page.Teams).To(HaveLen(1))
			Expect(page.Teams[0].Active).To(BeFalse())
		})

		ginkgo.It("lists by city", func() {
			rec := do(http.MethodGet, "/api/teams/city/angeles", "")
			var teams []TeamResponse
			decode(rec, &teams)
			Expect(teams).To(HaveLen(2))
		})

		ginkgo.It("lists teams founded in a range", func() {
			rec := do(http.MethodGet, "/api/teams/founded?from=1946&to=1947", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			var teams []TeamResponse
			decode(rec, &teams)
			Expect(teams).To(HaveLen(2))
		})

		ginkgo.It("reports stats", func() {
			rec := do(http.MethodGet, "/api/teams/stats", "")
			var stats TeamStatsResponse
			decode(rec, &stats)
			Expect(stats).To(Equal(TeamStatsResponse{TotalTeams: 3, ActiveTeams: 2, InactiveTeams: 1}))

			rec = do(http.MethodGet, "/api/teams/stats/cities/Boston", "")
			var city CityStatsResponse
			decode(rec, &city)
			Expect(city).To(Equal(CityStatsResponse{City: "Boston", Teams: 1}))
		})
	})

	ginkgo.Describe("GET /api/teams/health", func() {
		ginkgo.It("reports UP with the database state", func() {
			rec := do(http.MethodGet, "/api/teams/health", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			var health HealthResponse
			decode(rec, &health)
			Expect(health.Status).To(Equal(StatusUp))
			Expect(health.Service).To(Equal("teams-service"))
			Expect(health.Database).To(Equal(StatusUp))
			Expect(health.Timestamp).To(BeNumerically(">", 0))
		})

		ginkgo.It("stays 200 when the database is down", func() {
			pinger.err = errors.New("dial tcp: connection refused")

			rec := do(http.MethodGet, "/api/teams/health", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			var health HealthResponse
			decode(rec, &health)
			Expect(health.Database).To(Equal(StatusDown))
		})
	})

	ginkgo.It("hides internal errors behind a 500", func() {
		repo.failWith = errors.New("pq: relation \"teams\" does not exist")

		rec := do(http.MethodGet, "/api/teams/active", "")
		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		var resp ErrorResponse
		decode(rec, &resp)
		Expect(resp.Message).To(Equal("internal server error"))
	})
})
