package services

import (
	"math"
	"testing"
)

func TestProjectGrowthPureCompounding(t *testing.T) {
	series := ProjectGrowth(100000, 0, []float64{0.08}, 10)

	points, ok := series["0.08"]
	if !ok {
		t.Fatalf("missing series for rate 0.08: %v", series)
	}
	if len(points) != 11 {
		t.Fatalf("expected 11 points (years 0..10), got %d", len(points))
	}
	want := 100000 * math.Pow(1.08, 10)
	if math.Abs(points[10].Total-want) > 1e-6 {
		t.Fatalf("year 10 total mismatch: got %v want %v", points[10].Total, want)
	}
	if points[10].Invested != 100000 {
		t.Fatalf("invested should stay at the lump sum: %v", points[10].Invested)
	}
}

func TestProjectGrowthYearZeroBaseline(t *testing.T) {
	series := ProjectGrowth(50000, 2000, []float64{0.1}, 5)

	p := series["0.1"][0]
	if p.Period != 0 || p.Total != 50000 || p.Invested != 50000 || p.Returns != 0 {
		t.Fatalf("year 0 should be the untouched starting value, got %+v", p)
	}
}

func TestProjectGrowthContributeThenCompound(t *testing.T) {
	series := ProjectGrowth(1000, 100, []float64{0.1}, 1)

	// (1000 + 1200) * 1.1
	got := series["0.1"][1]
	if math.Abs(got.Total-2420) > 1e-9 {
		t.Fatalf("year 1 total mismatch: got %v want 2420", got.Total)
	}
	if got.Invested != 2200 {
		t.Fatalf("year 1 invested mismatch: got %v want 2200", got.Invested)
	}
	if math.Abs(got.Returns-(got.Total-got.Invested)) > 1e-9 {
		t.Fatalf("returns should be total minus invested: %+v", got)
	}
}

func TestProjectGrowthZeroRateIsLinear(t *testing.T) {
	series := ProjectGrowth(0, 500, []float64{0}, 3)

	points := series["0"]
	for year, p := range points {
		want := 500.0 * 12 * float64(year)
		if math.Abs(p.Total-want) > 1e-9 {
			t.Fatalf("year %d total mismatch: got %v want %v", year, p.Total, want)
		}
		if p.Returns != 0 {
			t.Fatalf("zero rate should earn nothing, year %d returns %v", year, p.Returns)
		}
	}
}

func TestProjectGrowthMultipleRatesIndependent(t *testing.T) {
	series := ProjectGrowth(10000, 0, []float64{0.05, 0.12}, 5)

	if len(series) != 2 {
		t.Fatalf("expected two independent series, got %d", len(series))
	}
	low := series["0.05"][5].Total
	high := series["0.12"][5].Total
	if high <= low {
		t.Fatalf("higher rate should produce higher total: %v vs %v", high, low)
	}
}

func TestProjectGrowthNegativeYearsClamped(t *testing.T) {
	series := ProjectGrowth(1000, 100, []float64{0.08}, -3)

	if len(series["0.08"]) != 1 {
		t.Fatalf("negative years should yield just the baseline point, got %d", len(series["0.08"]))
	}
}

func TestProjectSipInvestedAndReturns(t *testing.T) {
	points := ProjectSip(10000, 0.12, 20)

	if len(points) != 21 {
		t.Fatalf("expected 21 points (years 0..20), got %d", len(points))
	}
	final := points[20]
	if final.Invested != 10000*12*20 {
		t.Fatalf("invested mismatch: got %v want %v", final.Invested, 10000*12*20)
	}
	if final.Total <= final.Invested {
		t.Fatalf("positive return should beat contributions: total %v invested %v", final.Total, final.Invested)
	}
	if math.Abs(final.Returns-(final.Total-final.Invested)) > 1e-6 {
		t.Fatalf("returns should be total minus invested: %+v", final)
	}
}

func TestProjectSipYearZeroBaseline(t *testing.T) {
	points := ProjectSip(5000, 0.1, 5)

	p := points[0]
	if p.Period != 0 || p.Invested != 0 || p.Total != 0 || p.Returns != 0 {
		t.Fatalf("year 0 should be all zeros, got %+v", p)
	}
}

func TestProjectSipContributeThenCompoundOneMonth(t *testing.T) {
	// One month at a known rate: the contribution itself must grow.
	annual := 0.12
	monthlyRate := math.Pow(1+annual, 1.0/12) - 1
	points := ProjectSip(1000, annual, 1)

	// Closed form of twelve contribute-then-compound steps.
	want := 0.0
	for month := 0; month < 12; month++ {
		want = (want + 1000) * (1 + monthlyRate)
	}
	if math.Abs(points[1].Total-want) > 1e-9 {
		t.Fatalf("year 1 total mismatch: got %v want %v", points[1].Total, want)
	}
	if points[1].Total <= 12000 {
		t.Fatalf("a positive rate must beat the raw contributions, got %v", points[1].Total)
	}
}

func TestProjectSipZeroRate(t *testing.T) {
	points := ProjectSip(1000, 0, 2)

	if points[2].Total != 24000 {
		t.Fatalf("zero rate should return contributions exactly, got %v", points[2].Total)
	}
	if points[2].Returns != 0 {
		t.Fatalf("zero rate should earn nothing, got %v", points[2].Returns)
	}
}

func TestRateKey(t *testing.T) {
	cases := map[float64]string{
		0.08: "0.08",
		0.1:  "0.1",
		0:    "0",
	}
	for rate, want := range cases {
		if got := rateKey(rate); got != want {
			t.Fatalf("rateKey(%v) = %q, want %q", rate, got, want)
		}
	}
}
