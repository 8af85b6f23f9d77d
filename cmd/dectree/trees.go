package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/robjustinwagner/dectree/dataset"
	"github.com/robjustinwagner/dectree/tree"
	"github.com/robjustinwagner/dectree/tree/json"
	"github.com/robjustinwagner/dectree/tree/redisstore"
)

const (
	redisTreePrefix  = "redis://"
	redisKeyPrefix   = "dectree:tree"
	defaultRedisAddr = "localhost:6379"
	treeFlagUsage    = "path to a JSON file with the tree, or redis://<id> for a tree kept on redis (required)"
	redisFlagUsage   = "address of the redis server keeping trees"
)

func openTreeStore(ctx context.Context, addr string, schema *dataset.Schema) (tree.Store, error) {
	return redisstore.Open(ctx, addr, redisKeyPrefix, json.NewEncodeDecoder(schema))
}

func loadTree(ctx context.Context, input, redisAddr string, schema *dataset.Schema) (*tree.Tree, error) {
	if strings.HasPrefix(input, redisTreePrefix) {
		id := strings.TrimPrefix(input, redisTreePrefix)
		ts, err := openTreeStore(ctx, redisAddr, schema)
		if err != nil {
			return nil, err
		}
		defer ts.Close(ctx)
		t, err := ts.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, fmt.Errorf("no tree %q on redis at %s", id, redisAddr)
		}
		return t, nil
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("reading tree in JSON from %s: %v", input, err)
	}
	defer f.Close()
	t, err := json.ReadJSONTree(f, schema)
	if err != nil {
		return nil, fmt.Errorf("parsing tree in JSON from %s: %v", input, err)
	}
	return t, nil
}

func outputTree(outputPath string, t *tree.Tree) error {
	f := os.Stdout
	if outputPath != "" {
		var err error
		f, err = os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return json.WriteJSONTree(f, t)
}

func storeTree(ctx context.Context, addr string, t *tree.Tree) (string, error) {
	ts, err := openTreeStore(ctx, addr, t.Schema)
	if err != nil {
		return "", err
	}
	defer ts.Close(ctx)
	return ts.Create(ctx, t)
}
