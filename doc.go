// Package warp measures how alike two numeric sequences are when one of them
// may be stretched or compressed in time relative to the other.
//
// 🚀 What is inside?
//
//	metric/   - pointwise metrics (|a−b|, (a−b)², …), the Metric and
//	            SequenceMetric contracts, and a name registry
//	dtw/      - Dynamic Time Warping engine built on any pointwise metric
//	dataset/  - labelled sequences loaded from YAML, seeded subsampling
//	cmd/      - warpdist, a small CLI over the packages above
//
// ✨ Why warp?
//
//   - Generic over element and result type (int16 in, uint8 out is fine)
//   - One engine, any pointwise metric: plug your own via metric.NewFunc
//   - No hidden state: every call builds its own cost table, so a single
//     engine can be shared across goroutines
//
// Quick example:
//
//	m, _ := metric.FromName[float64, float64]("manhattan", false)
//	d := dtw.New(m)
//	dist, err := d.OneToOne([]float64{1, 3, 9}, []float64{2, 0, 0, 8})
//
//	go get github.com/katalvlaran/warp
package warp
