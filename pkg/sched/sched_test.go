//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package sched_test

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/async-mocks/pkg/expect"
	"github.com/joe/async-mocks/pkg/sched"
)

func TestMockSpawner_CountsEverySpawn(t *testing.T) {
	t.Parallel()

	counts := []uint64{0, 1, 3}

	for _, n := range counts {
		n := n
		t.Run(fmt.Sprintf("%d spawns", n), func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			spawner := sched.NewMockSpawner(t, n)

			for i := uint64(0); i < n; i++ {
				g.Expect(spawner.Spawn(sched.Task(func() {}))).To(Succeed())
			}

			g.Expect(spawner.Count()).To(Equal(n))
			g.Expect(spawner.Check()).To(Succeed())
		})
	}
}

func TestMockSpawner_NeverRunsSubmittedWork(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var ran atomic.Int64

	spawner := sched.NewMockSpawner(t, 2)
	g.Expect(spawner.Spawn(sched.Task(func() { ran.Add(1) }))).To(Succeed())
	g.Expect(spawner.Spawn(sched.Task(func() { ran.Add(1) }))).To(Succeed())

	g.Expect(ran.Load()).To(BeZero())
}

func TestMockSpawner_CheckReportsMismatch(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	spawner := sched.NewMockSpawner(t, 3)
	g.Expect(spawner.Spawn(sched.Task(func() {}))).To(Succeed())

	err := spawner.Check()
	g.Expect(err).To(HaveOccurred())

	var mismatch *expect.Mismatch
	g.Expect(errors.As(err, &mismatch)).To(BeTrue())
	g.Expect(*mismatch).To(Equal(expect.Mismatch{Expected: 3, Actual: 1}))
}

func TestMockSpawner_AcceptsEmptyTokens(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	// The mock never inspects the token: even a zero token is just counted.
	spawner := sched.NewMockSpawner(t, 1)
	g.Expect(spawner.Spawn(sched.Token{})).To(Succeed())
}

func TestRuntime_RunsSpawnedWork(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var ran atomic.Int64

	runtime := &sched.Runtime{}
	for i := 0; i < 3; i++ {
		g.Expect(runtime.Spawn(sched.Task(func() { ran.Add(1) }))).To(Succeed())
	}

	runtime.Wait()

	g.Expect(ran.Load()).To(Equal(int64(3)))
}

func TestRuntime_RejectsEmptyToken(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	runtime := &sched.Runtime{}

	err := runtime.Spawn(sched.Token{})
	g.Expect(err).To(MatchError(sched.ErrEmptyToken))
}
