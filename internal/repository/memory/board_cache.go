package memory

import (
	"strconv"
	"time"

	"talentflow-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// BoardCache keeps recently read pipeline boards in memory so the Kanban
// view does not hit Postgres on every poll. Writers must Invalidate after
// a successful move.
type BoardCache struct {
	cache *cache.Cache
}

func NewBoardCache() *BoardCache {
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &BoardCache{
		cache: c,
	}
}

func (r *BoardCache) Save(jobId int, board entity.Board) {
	r.cache.Set(strconv.Itoa(jobId), board.Clone(), cache.DefaultExpiration)
}

func (r *BoardCache) Get(jobId int) (entity.Board, bool) {
	if x, found := r.cache.Get(strconv.Itoa(jobId)); found {
		return x.(entity.Board).Clone(), true
	}
	return nil, false
}

func (r *BoardCache) Invalidate(jobId int) {
	r.cache.Delete(strconv.Itoa(jobId))
}
