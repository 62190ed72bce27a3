package main

import (
	"github.com/tuannh982/arith/utils/collections"

	log "github.com/sirupsen/logrus"
)

type counts = collections.ArithMap[string, int]

func logFields(m counts) log.Fields {
	fields := make(log.Fields, len(m))
	for _, k := range collections.SortedKeys(m) {
		fields[k] = m[k]
	}
	return fields
}

func main() {
	logger := log.WithFields(log.Fields{"component": "arith"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Logger.SetLevel(log.InfoLevel)

	x := collections.FromPairs(
		collections.Pair[string, int]{Key: "a", Value: 1},
		collections.Pair[string, int]{Key: "b", Value: 2},
	)
	y := counts{"b": 2, "c": 3}

	logger.WithFields(logFields(x.AddScalar(1))).Info("x + 1")
	logger.WithFields(logFields(x.Add(y))).Info("x + y")
	logger.WithFields(logFields(x.Sub(y))).Info("x - y")
	logger.WithFields(logFields(x.Sub(y).Prune())).Info("prune(x - y)")
	logger.WithFields(logFields(x.MulScalar(3))).Info("x * 3")

	total := collections.New[string, int]()
	for _, m := range []counts{x, y, x} {
		total.AddInPlace(m)
	}
	logger.WithField("size", total.Size()).Infof("running total %s", total)
}
