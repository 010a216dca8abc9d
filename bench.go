// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cybrota/arborist/tree"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

const benchReportEvery = 10_000

type benchMetrics struct {
	Inserts    *prometheus.CounterVec
	Lookups    *prometheus.CounterVec
	Rotations  prometheus.Gauge
	TreeHeight *prometheus.GaugeVec
	TreeSize   *prometheus.GaugeVec
}

func newBenchMetrics(reg prometheus.Registerer) *benchMetrics {
	m := &benchMetrics{
		Inserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arborist_inserts_total",
			Help: "Insert calls per tree kind, duplicates included.",
		}, []string{"tree"}),
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arborist_lookups_total",
			Help: "Lookups by outcome.",
		}, []string{"result"}),
		Rotations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arborist_avl_rotations",
			Help: "Single rotations performed by the AVL tree.",
		}),
		TreeHeight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "arborist_tree_height",
			Help: "Height of each tree.",
		}, []string{"tree"}),
		TreeSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "arborist_tree_size",
			Help: "Distinct keys held by each tree.",
		}, []string{"tree"}),
	}
	reg.MustRegister(m.Inserts, m.Lookups, m.Rotations, m.TreeHeight, m.TreeSize)
	return m
}

type benchReport struct {
	Count      int
	Distinct   int
	AVLHeight  int
	BSTHeight  int
	Rotations  int
	BloomSkips int
	Hits       int
	Misses     int
	Sum        int
	Elapsed    time.Duration
}

// runBench inserts cfg.Count random keys into an AVL tree and a BST, checks
// both, then runs as many random lookups. A bloom filter of inserted keys
// answers most misses without touching the trees.
func runBench(cfg BenchConfig, out io.Writer, metrics *benchMetrics) (*benchReport, error) {
	if cfg.Count <= 0 {
		return nil, errors.Errorf("bench count must be positive, got %d", cfg.Count)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	keySpace := cfg.Count * 4
	avl := tree.NewAVLTree[int]()
	bst := tree.NewBinarySearchTree[int]()
	filter := bloom.New(cfg.BloomSize, cfg.BloomHashes)

	bar := progressbar.NewOptions(cfg.Count*2,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("🌳 Inserting and searching..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	start := time.Now()
	since := start
	for i := 1; i <= cfg.Count; i++ {
		key := rng.Intn(keySpace)
		avl.Insert(key)
		bst.Insert(key)
		filter.AddString(strconv.Itoa(key))
		metrics.Inserts.WithLabelValues("avl").Inc()
		metrics.Inserts.WithLabelValues("bst").Inc()

		if i%benchReportEvery == 0 {
			_ = bar.Add(benchReportEvery)
			logger.Debug().Msgf("inserted %s keys in %s; %s keys/s",
				humanize.Comma(int64(i)),
				time.Since(since),
				humanize.Comma(int64(float64(benchReportEvery)/time.Since(since).Seconds())))
			since = time.Now()
		}
	}
	_ = bar.Add(cfg.Count % benchReportEvery)

	metrics.Rotations.Set(float64(avl.Rotations()))
	metrics.TreeHeight.WithLabelValues("avl").Set(float64(avl.Height()))
	metrics.TreeHeight.WithLabelValues("bst").Set(float64(bst.Height()))
	metrics.TreeSize.WithLabelValues("avl").Set(float64(avl.Len()))
	metrics.TreeSize.WithLabelValues("bst").Set(float64(bst.Len()))

	if err := tree.CheckAVL(avl.Root); err != nil {
		return nil, errors.Wrap(err, "avl tree invariants broken")
	}
	if err := tree.CheckOrdering(bst.RootNode()); err != nil {
		return nil, errors.Wrap(err, "bst ordering broken")
	}
	if avl.Len() != bst.Len() {
		return nil, errors.Errorf("trees disagree on size: avl=%d bst=%d", avl.Len(), bst.Len())
	}

	avlSum := tree.CalculateTreeSum(avl.RootNode())
	if bstSum := tree.CalculateTreeSum(bst.RootNode()); avlSum != bstSum {
		return nil, errors.Errorf("trees disagree on sum: avl=%d bst=%d", avlSum, bstSum)
	}

	report := &benchReport{
		Count:     cfg.Count,
		Distinct:  avl.Len(),
		AVLHeight: avl.Height(),
		BSTHeight: bst.Height(),
		Rotations: avl.Rotations(),
		Sum:       avlSum,
	}

	for i := 1; i <= cfg.Count; i++ {
		key := rng.Intn(keySpace)
		switch {
		case !filter.TestString(strconv.Itoa(key)):
			report.BloomSkips++
			metrics.Lookups.WithLabelValues("bloom_skip").Inc()
		case avl.Search(key):
			if !bst.Search(key) {
				return nil, errors.Errorf("key %d found in avl tree only", key)
			}
			report.Hits++
			metrics.Lookups.WithLabelValues("hit").Inc()
		default:
			report.Misses++
			metrics.Lookups.WithLabelValues("miss").Inc()
		}
		if i%benchReportEvery == 0 {
			_ = bar.Add(benchReportEvery)
		}
	}
	_ = bar.Add(cfg.Count % benchReportEvery)
	_ = bar.Finish()

	report.Elapsed = time.Since(start)
	return report, nil
}

func printBenchReport(w io.Writer, report *benchReport) {
	fmt.Fprintf(w, "\n✅ Bench completed in %s\n\n", report.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "  • inserts: %s (%s distinct)\n", humanize.Comma(int64(report.Count)), humanize.Comma(int64(report.Distinct)))
	fmt.Fprintf(w, "  • avl height: %d, rotations: %s\n", report.AVLHeight, humanize.Comma(int64(report.Rotations)))
	fmt.Fprintf(w, "  • bst height: %d\n", report.BSTHeight)
	fmt.Fprintf(w, "  • lookups: %s hits, %s misses, %s answered by bloom filter\n",
		humanize.Comma(int64(report.Hits)),
		humanize.Comma(int64(report.Misses)),
		humanize.Comma(int64(report.BloomSkips)))
	fmt.Fprintf(w, "  • key sum: %s\n", humanize.Comma(int64(report.Sum)))
}

// printMetrics dumps every gathered sample as `name{labels} value`.
func printMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return errors.Wrap(err, "failed to gather metrics")
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}

			var value float64
			if c := m.GetCounter(); c != nil {
				value = c.GetValue()
			} else if g := m.GetGauge(); g != nil {
				value = g.GetValue()
			}

			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			lines = append(lines, fmt.Sprintf("%s %g", name, value))
		}
	}
	sort.Strings(lines)

	fmt.Fprintln(w, "\n📊 Metrics")
	for _, line := range lines {
		fmt.Fprintln(w, "  "+line)
	}
	return nil
}
