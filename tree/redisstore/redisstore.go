/*
Package redisstore keeps trees in a Redis DB, encoded as JSON under the key
<prefix>:<id>, where id is a random UUID assigned when the tree is saved.
*/
package redisstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/redis.v5"

	"github.com/billylozowski/PitchClassification-decisiontree/tree"
	"github.com/billylozowski/PitchClassification-decisiontree/tree/json"
)

/*
ErrNotFound is returned by Load when no tree is stored under the
requested ID.
*/
const ErrNotFound = storeError("tree not found")

type storeError string

func (se storeError) Error() string {
	return string(se)
}

/*
Store saves and loads trees to and from a Redis DB.
*/
type Store struct {
	rc     *redis.Client
	prefix string
}

// New builds a Store backed by the given redis client that places trees
// under keys starting with prefix.
func New(rc *redis.Client, prefix string) *Store {
	return &Store{rc, prefix}
}

/*
Save takes a context.Context and a tree, stores its JSON encoding in Redis
under a newly generated ID and returns that ID.
*/
func (rs *Store) Save(ctx context.Context, t *tree.Tree) (string, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("saving tree: encoding tree: %v", err)
	}
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		id := uuid.NewString()
		ok, err := rs.rc.SetNX(rs.keyFor(id), data, 0).Result()
		if err != nil {
			return "", fmt.Errorf("saving tree in redis: %v", err)
		}
		if ok {
			return id, nil
		}
	}
}

/*
Load takes a context.Context and an ID and returns the tree stored under
it. ErrNotFound is returned if there is none.
*/
func (rs *Store) Load(ctx context.Context, id string) (*tree.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := rs.rc.Get(rs.keyFor(id)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: %v", id, err)
	}
	t, err := json.Unmarshal([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: %v", id, err)
	}
	return t, nil
}

// Delete removes the tree stored under the given ID, if any.
func (rs *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := rs.rc.Del(rs.keyFor(id)).Result(); err != nil {
		return fmt.Errorf("deleting tree %q from redis: %v", id, err)
	}
	return nil
}

func (rs *Store) keyFor(id string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, id)
}
