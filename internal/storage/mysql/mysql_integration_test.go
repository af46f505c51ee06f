//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"sporthub/internal/domain"
	mysqlrepo "sporthub/internal/storage/mysql"
)

func TestRepo_MySQL_UserState(t *testing.T) {
	// Start isolated MySQL; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=sporthub",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "sporthub")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := mysqlrepo.New(db)
	ctx := context.Background()

	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}

	// Favorites: set two, unset one, expect one to survive.
	if err := repo.SetFavorite(ctx, 3, true); err != nil {
		t.Fatalf("SetFavorite: %v", err)
	}
	if err := repo.SetFavorite(ctx, 7, true); err != nil {
		t.Fatalf("SetFavorite: %v", err)
	}
	if err := repo.SetFavorite(ctx, 3, false); err != nil {
		t.Fatalf("SetFavorite off: %v", err)
	}

	// My review: write, overwrite, keep the latest.
	rv := domain.Review{ID: "r-1", Author: "Mario Rossi", Comment: "Great pitch.", Score: 5, CreatedAt: time.Now().UTC().Truncate(time.Second)}
	if err := repo.SaveMyReview(ctx, 7, rv); err != nil {
		t.Fatalf("SaveMyReview: %v", err)
	}
	rv.Comment = "Still a great pitch."
	rv.Score = 4
	if err := repo.SaveMyReview(ctx, 7, rv); err != nil {
		t.Fatalf("SaveMyReview overwrite: %v", err)
	}
	if err := repo.SaveMyReview(ctx, 12, domain.Review{ID: "r-2", Author: "Mario Rossi", Comment: "Cold water.", Score: 2}); err != nil {
		t.Fatalf("SaveMyReview: %v", err)
	}
	if err := repo.DeleteMyReview(ctx, 12); err != nil {
		t.Fatalf("DeleteMyReview: %v", err)
	}

	st, err := repo.LoadState(ctx)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if len(st.Favorites) != 1 || !st.Favorites[7] {
		t.Fatalf("unexpected favorites: %+v", st.Favorites)
	}
	if len(st.MyReviews) != 1 {
		t.Fatalf("unexpected reviews: %+v", st.MyReviews)
	}
	got := st.MyReviews[7]
	if got.Comment != "Still a great pitch." || got.Score != 4 || !got.Mine {
		t.Fatalf("unexpected review: %+v", got)
	}

	// ClearFavorites wipes the table but leaves reviews alone.
	if err := repo.ClearFavorites(ctx); err != nil {
		t.Fatalf("ClearFavorites: %v", err)
	}
	st, err = repo.LoadState(ctx)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if len(st.Favorites) != 0 || len(st.MyReviews) != 1 {
		t.Fatalf("state after clear: %+v", st)
	}
}
