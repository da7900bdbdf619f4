package main

import (
	"fmt"

	ui "github.com/gizak/termui"

	"github.com/avahowell/passgen/pwgen"
)

const dashboardHelp = "[ G ](fg-black,bg-white) Generate  [ C ](fg-black,bg-white) Copy  [ E ](fg-black,bg-white) Export  [ Q ](fg-black,bg-white) Quit"

type dashboard struct {
	s      *session
	list   *ui.List
	gauge  *ui.Gauge
	status *ui.Par
	flash  string
}

// gaugePercent maps a report onto the gauge using the same scale as the
// strength bar.
func gaugePercent(r pwgen.Report) int {
	p := int(r.Bits * 100 / pwgen.DefaultMaxBits)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func ratingColor(r pwgen.Rating) ui.Attribute {
	switch r {
	case pwgen.Weak:
		return ui.ColorRed
	case pwgen.Moderate:
		return ui.ColorYellow
	case pwgen.Strong:
		return ui.ColorGreen
	}
	return ui.ColorMagenta
}

func dashboardItems(res pwgen.Result) []string {
	items := make([]string, len(res.Passwords))
	for i, p := range res.Passwords {
		items[i] = fmt.Sprintf("%3d  %v", i+1, p)
	}
	return items
}

func newDashboard(s *session) *dashboard {
	ls := ui.NewList()
	ls.ItemFgColor = ui.ColorYellow
	ls.BorderLabel = "Passwords"
	ls.Height = ui.TermHeight() - 7

	gauge := ui.NewGauge()
	gauge.BorderLabel = "Strength"
	gauge.Height = 3

	status := ui.NewPar("")
	status.Height = 1
	status.Border = false

	help := ui.NewPar(dashboardHelp)
	help.Height = 1
	help.Border = false

	ui.Body.AddRows(
		ui.NewRow(ui.NewCol(12, 0, ls)),
		ui.NewRow(ui.NewCol(12, 0, gauge)),
		ui.NewRow(ui.NewCol(12, 0, status)),
		ui.NewRow(ui.NewCol(12, 0, help)),
	)

	return &dashboard{s: s, list: ls, gauge: gauge, status: status}
}

func (d *dashboard) regenerate() {
	res, err := d.s.generate()
	if err != nil {
		d.flash = err.Error()
		return
	}
	d.list.Items = dashboardItems(res)
	d.gauge.Percent = gaugePercent(res.Report)
	d.gauge.Label = fmt.Sprintf("%.1f bits", res.Report.Bits)
	d.gauge.BarColor = ratingColor(res.Report.Rating)
	d.flash = ""
}

func (d *dashboard) render() {
	report := d.s.last.Report
	d.status.Text = fmt.Sprintf("%v, %v characters from a pool of %v  %v",
		report.Rating, report.Length, report.PoolSize, d.flash)
	ui.Clear()
	ui.Body.Align()
	ui.Render(ui.Body)
}

// runUI shows the last batch, its strength gauge, and key bindings to
// regenerate, copy and export.
func runUI(s *session) error {
	if err := ui.Init(); err != nil {
		return err
	}
	defer ui.Close()

	d := newDashboard(s)
	d.regenerate()

	ui.Handle("/sys/kbd/q", func(ui.Event) {
		ui.StopLoop()
	})
	ui.Handle("/sys/kbd/g", func(ui.Event) {
		d.regenerate()
		d.render()
	})
	ui.Handle("/sys/kbd/c", func(ui.Event) {
		label, err := s.copyLast(0)
		if err != nil {
			d.flash = err.Error()
		} else {
			d.flash = label + " copied"
		}
		d.render()
	})
	ui.Handle("/sys/kbd/e", func(ui.Event) {
		path, err := s.export()
		if err != nil {
			d.flash = err.Error()
		} else {
			d.flash = "saved to " + path
		}
		d.render()
	})
	ui.Handle("/sys/wnd/resize", func(ui.Event) {
		ui.Body.Width = ui.TermWidth()
		if ui.TermHeight() > 10 {
			d.list.Height = ui.TermHeight() - 7
		}
		d.render()
	})

	ui.Body.Width = ui.TermWidth()
	d.render()
	ui.Loop()
	return nil
}
