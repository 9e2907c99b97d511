// Demo binary: an external consumer of the map and traversal contracts.
// It builds all three engines, runs the same seeded workload through each
// and reports shape statistics through the shared logger.
package main

import (
	r "math/rand"

	"go-trees/config"
	"go-trees/pkg/bst"
	"go-trees/pkg/btree"
	"go-trees/pkg/rbtree"
	"go-trees/pkg/treemap"
	"go-trees/util/logger"

	"github.com/sirupsen/logrus"
)

func main() {
	configs := config.New().DemoConfig
	rand := r.New(r.NewSource(configs.Seed))

	bt, err := btree.New[int, int](&btree.Options{Degree: configs.BTreeDegree})
	if err != nil {
		logger.L.Fatal(err)
	}

	engines := []struct {
		name string
		m    treemap.Map[int, int]
	}{
		{"bst", bst.New[int, int]()},
		{"rbtree", rbtree.New[int, int]()},
		{"btree", bt},
	}

	keys := rand.Perm(configs.Keys)

	for _, e := range engines {
		for _, k := range keys {
			e.m.Put(k, 2*k)
		}

		min, _ := e.m.Min()
		max, _ := e.m.Max()
		logger.L.WithFields(logrus.Fields{
			"prefix": e.name,
			"size":   e.m.Size(),
			"height": e.m.Height(),
			"min":    min,
			"max":    max,
		}).Info("workload inserted")

		if err := e.m.Delete(keys[0]); err != nil {
			logger.L.Warnf("%s: %v", e.name, err)
		}
	}

	// traversal capability is satisfied by the binary engines only
	tree := rbtree.New[int, int]()
	for _, k := range keys {
		tree.Put(k, 2*k)
	}

	it := tree.InOrder()
	prefix := make([]int, 0, 10)
	for i := 0; i < 10; i++ {
		e, ok := it.Next()
		if !ok {
			break
		}
		prefix = append(prefix, e.Key)
	}
	logger.L.Infof("rbtree in-order prefix: %v", prefix)
}
