package verify

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/dshinzaki/Life/utils"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(11, 8, 100)
	b := Generate(11, 8, 100)
	if len(a.Ops) != 100 {
		t.Fatalf("generated %d ops, expected 100", len(a.Ops))
	}
	for k := range a.Ops {
		if a.Ops[k] != b.Ops[k] {
			t.Fatalf("op %d differs: %+v vs %+v", k, a.Ops[k], b.Ops[k])
		}
		if a.Ops[k].I < 0 || a.Ops[k].I >= 8 || a.Ops[k].J < 0 || a.Ops[k].J >= 8 {
			t.Fatalf("op %d out of range: %+v", k, a.Ops[k])
		}
	}
}

func TestRunScripts(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		if err := Run(Generate(seed, 1+int(seed)%9, 150)); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
	}
}

func TestRunGliderScript(t *testing.T) {
	s := Script{Size: 12, Ops: []Op{
		{Kind: OpSetLive, I: 0, J: 0},
		{Kind: OpSetLive, I: 0, J: 1},
		{Kind: OpSetLive, I: 0, J: 2},
		{Kind: OpSetLive, I: 1, J: 2},
		{Kind: OpSetLive, I: 2, J: 1},
	}}
	for range 48 {
		s.Ops = append(s.Ops, Op{Kind: OpStep})
	}
	if err := Run(s); err != nil {
		t.Fatal(err)
	}
}

func TestRunReportsBadScript(t *testing.T) {
	s := Script{Seed: 3, Size: 2, Ops: []Op{{Kind: OpToggle, I: 2, J: 0}}}
	if err := Run(s); err == nil {
		t.Fatal("out of range op did not fail")
	}
	if err := Run(Script{Size: -1}); err == nil {
		t.Fatal("negative size did not fail")
	}
}

func TestCompareMismatch(t *testing.T) {
	err := compare([][]bool{{true, false}}, [][]bool{{true, true}})
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected ErrMismatch, got %v", err)
	}
}

func TestRunAll(t *testing.T) {
	config := utils.DefaultConfig()
	config.Size = 10
	config.VerifyTrials = 16
	config.VerifySteps = 80
	config.VerifyWorkers = 4
	if err := RunAll(context.Background(), config); err != nil {
		t.Fatal(err)
	}
}

func TestRunAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	config := utils.DefaultConfig()
	config.VerifyTrials = 4
	config.VerifyWorkers = 1
	if err := RunAll(ctx, config); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
