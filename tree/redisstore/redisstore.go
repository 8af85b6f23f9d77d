/*
Package redisstore provides a tree.Store backed by a redis DB, where every
tree is kept encoded under the key "<prefix>:<id>".
*/
package redisstore

import (
	"context"
	"fmt"

	"github.com/robjustinwagner/dectree/tree"
	"github.com/robjustinwagner/dectree/tree/json"
	"gopkg.in/redis.v5"
)

// IDLength is the length of the random IDs generated for new trees
const IDLength = 20

type redisStore struct {
	rc     *redis.Client
	prefix string
	encdec json.EncodeDecoder
}

/*
New takes a redis client, a key prefix and an EncodeDecoder and returns a
tree.Store that keeps trees in the redis DB encoded with the EncodeDecoder.
*/
func New(rc *redis.Client, prefix string, encdec json.EncodeDecoder) tree.Store {
	return &redisStore{rc, prefix, encdec}
}

/*
Open takes a redis address, a key prefix and an EncodeDecoder, connects to
the redis server and returns a tree.Store on it. An error is returned if the
server cannot be reached.
*/
func Open(ctx context.Context, addr, prefix string, encdec json.EncodeDecoder) (tree.Store, error) {
	rc := redis.NewClient(&redis.Options{Addr: addr})
	if err := rc.Ping().Err(); err != nil {
		rc.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %v", addr, err)
	}
	if err := ctx.Err(); err != nil {
		rc.Close()
		return nil, err
	}
	return New(rc, prefix, encdec), nil
}

func (rs *redisStore) Create(ctx context.Context, t *tree.Tree) (string, error) {
	data, err := rs.encdec.Encode(t)
	if err != nil {
		return "", fmt.Errorf("creating tree: encoding tree: %v", err)
	}
	var ok bool
	var id string
	for !ok {
		if err = ctx.Err(); err != nil {
			return "", err
		}
		id = newID(IDLength)
		ok, err = rs.rc.SetNX(rs.keyFor(id), data, 0).Result()
		if err != nil {
			return "", fmt.Errorf("creating tree in redis: %v", err)
		}
	}
	return id, nil
}

func (rs *redisStore) Get(ctx context.Context, id string) (*tree.Tree, error) {
	data, err := rs.rc.Get(rs.keyFor(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: %v", id, err)
	}
	t, err := rs.encdec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: decoding: %v", id, err)
	}
	return t, nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return rs.rc.Close()
}

func (rs *redisStore) keyFor(id string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, id)
}
