package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/rawbytedev/vector"
	"github.com/rawbytedev/vector/pkg/compactwire"
)

var (
	size    = flag.Int("size", 4096, "elements pushed per round")
	rounds  = flag.Int("rounds", 10000, "number of rounds")
	profile = flag.String("profile", "mem.prof", "heap profile output, empty to skip")
	listen  = flag.String("listen", "", "serve pprof and /metrics on this address and block when done")
	verbose = flag.Bool("verbose", false, "log every buffer resize")
)

var (
	opsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vector",
		Name:      "ops_total",
		Help:      "Vector operations performed by the driver.",
	}, []string{"op"})
	lastLen = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "vector",
		Name:      "len",
		Help:      "Length of the working vector at the end of the last round.",
	})
	lastCap = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "vector",
		Name:      "capacity",
		Help:      "Capacity of the working vector at the end of the last round.",
	})
	frameBytes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "vector",
		Name:      "frame_bytes",
		Help:      "Size of encoded frames.",
		Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
	})
)

func main() {
	flag.Parse()

	var log *zap.Logger
	var err error
	if *verbose {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	vector.SetLogger(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(opsTotal, lastLen, lastCap, frameBytes)

	if *listen != "" {
		http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			log.Error("http server stopped", zap.Error(http.ListenAndServe(*listen, nil)))
		}()
	}

	var f *os.File
	if *profile != "" {
		f, err = os.Create(*profile)
		if err != nil {
			log.Fatal("create profile", zap.Error(err))
		}
		defer f.Close()
		runtime.MemProfileRate = 1
	}

	enc, err := compactwire.NewEncoder(compactwire.Options{UnsafePrimitives: true})
	if err != nil {
		log.Fatal("encoder", zap.Error(err))
	}
	defer enc.Close()
	dec := compactwire.NewDecoder(compactwire.Options{UnsafePrimitives: true, CheckAlignment: true})

	for r := 0; r < *rounds; r++ {
		if err := round(enc, dec); err != nil {
			log.Fatal("round failed", zap.Int("round", r), zap.Error(err))
		}
	}
	log.Info("done", zap.Int("rounds", *rounds), zap.Int("size", *size))

	if f != nil {
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Error("write profile", zap.Error(err))
		}
	}
	if *listen != "" {
		select {}
	}
}

// round exercises each growth path once and round-trips the result through
// a frame.
func round(enc *compactwire.Encoder, dec *compactwire.Decoder) error {
	v := vector.New[int64]()
	for i := 0; i < *size; i++ {
		v.PushFront(int64(i))
	}
	opsTotal.WithLabelValues("push").Add(float64(*size))

	d := v.Drain(v.Len()/4, v.Len()/2)
	for range d.All() {
	}
	opsTotal.WithLabelValues("drain").Inc()

	v.ExtendSlice(v.Clone().AsSlice())
	opsTotal.WithLabelValues("extend").Inc()

	data, err := compactwire.EncodeVector(enc, v)
	if err != nil {
		return err
	}
	frameBytes.Observe(float64(len(data)))
	back, err := compactwire.DecodeVector[int64](dec, data)
	if err != nil {
		return err
	}
	opsTotal.WithLabelValues("roundtrip").Inc()

	lastLen.Set(float64(back.Len()))
	lastCap.Set(float64(v.Capacity()))
	for !v.IsEmpty() {
		v.PopFront()
	}
	opsTotal.WithLabelValues("pop").Add(float64(back.Len()))
	v.Drop()
	return nil
}
