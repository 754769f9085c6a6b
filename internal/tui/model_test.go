package tui

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/async-mocks/internal/config"
	"github.com/joe/async-mocks/internal/monitor"
	"github.com/joe/async-mocks/pkg/sched"
	"github.com/joe/async-mocks/pkg/timing"
)

var _ = Describe("Model", func() {
	var (
		cfg   *config.Config
		mon   *monitor.Monitor
		beats chan monitor.Beat
		model Model
	)

	BeforeEach(func() {
		cfg = &config.Config{
			Period: time.Second,
			Warmup: 500 * time.Millisecond,
			Count:  3,
		}
		mon = monitor.New(&sched.Runtime{}, timing.MockProvider{})
		beats = make(chan monitor.Beat, 16)
		model = NewModel(cfg, mon, beats)
	})

	Describe("initial state", func() {
		It("starts warming up", func() {
			Expect(model.state).To(Equal("warming"))
		})

		It("has no beat history", func() {
			Expect(model.history).To(BeEmpty())
		})

		It("starts the spinner and the beat listener", func() {
			Expect(model.Init()).ToNot(BeNil())
		})
	})

	Describe("beat handling", func() {
		It("switches to beating on the first beat", func() {
			newModel, cmd := model.Update(BeatMsg{Seq: 1, At: time.Now()})
			updated := newModel.(Model)

			Expect(updated.state).To(Equal("beating"))
			Expect(updated.history).To(HaveLen(1))
			Expect(cmd).ToNot(BeNil(), "keeps listening for the next beat")
		})

		It("caps the history at the display limit", func() {
			current := model
			for seq := int64(1); seq <= 8; seq++ {
				newModel, _ := current.Update(BeatMsg{Seq: seq, At: time.Now()})
				current = newModel.(Model)
			}

			Expect(current.history).To(HaveLen(beatHistoryLimit))
			Expect(current.history[0].Seq).To(Equal(int64(8 - beatHistoryLimit + 1)))
			Expect(current.history[beatHistoryLimit-1].Seq).To(Equal(int64(8)))
		})
	})

	Describe("finishing", func() {
		It("completes and quits when the beat stream ends", func() {
			newModel, cmd := model.Update(DoneMsg{})
			updated := newModel.(Model)

			Expect(updated.state).To(Equal("complete"))
			Expect(cmd).ToNot(BeNil())
		})

		It("cancels the monitor and quits on q", func() {
			keyMsg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}

			newModel, cmd := model.Update(keyMsg)
			updated := newModel.(Model)

			Expect(updated.quitting).To(BeTrue())
			Expect(cmd).ToNot(BeNil())
		})
	})

	Describe("rendering", func() {
		It("shows the title and quit hint", func() {
			view := model.View()

			Expect(view).To(ContainSubstring("pulse"))
			Expect(view).To(ContainSubstring("press q to quit"))
		})

		It("shows recent beats once beating", func() {
			newModel, _ := model.Update(BeatMsg{Seq: 1, At: time.Now()})
			view := newModel.(Model).View()

			Expect(view).To(ContainSubstring("beat 1"))
		})

		It("renders nothing after quitting", func() {
			newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

			Expect(newModel.(Model).View()).To(BeEmpty())
		})
	})
})

func TestTUI(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "TUI Suite")
}
