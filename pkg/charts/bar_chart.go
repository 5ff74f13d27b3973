package charts

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Bar is one category of a bar chart.
type Bar struct {
	Label string
	Value float64
}

type BarChartOption func(*BarChart)

// WithValueFormatter sets how values are printed on the y-axis.
func WithValueFormatter(f func(float64) string) BarChartOption {
	return func(c *BarChart) {
		c.formatValue = f
	}
}

// WithBarColor sets the colour of the bars.
func WithBarColor(color tcell.Color) BarChartOption {
	return func(c *BarChart) {
		c.barColor = color
	}
}

// BarChart draws vertical bars scaled to the largest value.
// Category labels are rotated: they run downwards, one rune per row, under their bar.
// Bars that do not fit are left out and counted next to the x-axis title.
type BarChart struct {
	*tview.Box
	xLabel string
	yLabel string
	bars   []Bar

	formatValue func(float64) string
	barColor    tcell.Color
}

func NewBarChart(title, xLabel, yLabel string, bars []Bar, options ...BarChartOption) *BarChart {
	box := tview.NewBox()
	box.SetBorder(true)
	box.SetTitle(" " + title + " ")
	c := &BarChart{
		Box:         box,
		xLabel:      xLabel,
		yLabel:      yLabel,
		bars:        bars,
		formatValue: FormatCount,
		barColor:    tcell.ColorCornflowerBlue,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// FormatCount prints a value as a whole number.
func FormatCount(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
}

func (c *BarChart) Bars() []Bar {
	return c.bars
}

// eighths of a cell, index 0 is empty
var partialBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇'}

const fullBlock = '█'

type chartLayout struct {
	axisWidth  int
	plotHeight int
	labelRows  int
	slotWidth  int
	barWidth   int
	visible    int
	hidden     int
	maxValue   float64
}

func (c *BarChart) layout(width, height int) (l chartLayout, ok bool) {
	l.axisWidth = len(c.formatValue(0))
	for _, bar := range c.bars {
		l.axisWidth = max(l.axisWidth, len(c.formatValue(bar.Value)))
	}
	l.axisWidth++

	longest := 1
	for _, bar := range c.bars {
		longest = max(longest, len([]rune(bar.Label)))
	}
	l.labelRows = min(longest, max(1, height/3))

	// y-axis title, x-axis line, rotated labels, x-axis title
	l.plotHeight = height - 1 - 1 - l.labelRows - 1
	plotWidth := width - l.axisWidth - 1
	if l.plotHeight < 1 || plotWidth < 1 {
		return l, false
	}
	l.visible = len(c.bars)
	if l.visible == 0 {
		return l, true
	}
	l.slotWidth = plotWidth / l.visible
	if l.slotWidth < 1 {
		l.slotWidth = 1
		l.visible = plotWidth
	}
	l.hidden = len(c.bars) - l.visible
	l.maxValue = c.maxValue(l.visible)
	l.barWidth = l.slotWidth
	if l.slotWidth > 2 {
		l.barWidth = l.slotWidth - 1
	}
	return l, true
}

// maxValue scales against the first n bars, the ones that fit on screen.
func (c *BarChart) maxValue(n int) (m float64) {
	for _, bar := range c.bars[:n] {
		m = max(m, bar.Value)
	}
	return m
}

func (c *BarChart) Draw(screen tcell.Screen) {
	c.DrawForSubclass(screen, c)
	x, y, width, height := c.GetInnerRect()
	l, ok := c.layout(width, height)
	if !ok {
		tview.Print(screen, "too small", x, y, width, tview.AlignLeft, tcell.ColorGray)
		return
	}
	axisStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	labelColor := tcell.ColorLightGray

	tview.Print(screen, c.yLabel, x, y, width, tview.AlignLeft, labelColor)

	top := y + 1
	bottom := top + l.plotHeight - 1
	axisX := x + l.axisWidth
	maxValue := l.maxValue

	for row := top; row <= bottom; row++ {
		screen.SetContent(axisX, row, '│', nil, axisStyle)
	}
	tview.Print(screen, c.formatValue(maxValue), x, top, l.axisWidth-1, tview.AlignRight, labelColor)
	if l.plotHeight >= 5 {
		tview.Print(screen, c.formatValue(maxValue/2), x, top+l.plotHeight/2, l.axisWidth-1, tview.AlignRight, labelColor)
	}
	if l.plotHeight > 1 {
		tview.Print(screen, c.formatValue(0), x, bottom, l.axisWidth-1, tview.AlignRight, labelColor)
	}

	axisY := bottom + 1
	screen.SetContent(axisX, axisY, '└', nil, axisStyle)
	for col := axisX + 1; col < x+width; col++ {
		screen.SetContent(col, axisY, '─', nil, axisStyle)
	}

	barStyle := tcell.StyleDefault.Foreground(c.barColor)
	for i := 0; i < l.visible; i++ {
		bar := c.bars[i]
		barX := axisX + 1 + i*l.slotWidth
		c.drawBar(screen, barX, bottom, l, bar.Value, maxValue, barStyle)
		c.drawLabel(screen, barX+(l.barWidth-1)/2, axisY+1, l.labelRows, bar.Label, labelColor)
	}

	xLabel := c.xLabel
	if l.hidden > 0 {
		xLabel = fmt.Sprintf("%s (+%d more)", xLabel, l.hidden)
	}
	tview.Print(screen, xLabel, axisX+1, axisY+1+l.labelRows, width-l.axisWidth-1, tview.AlignCenter, labelColor)
}

func (c *BarChart) drawBar(screen tcell.Screen, x, bottom int, l chartLayout, value, maxValue float64, style tcell.Style) {
	if maxValue <= 0 || value <= 0 {
		return
	}
	eighths := int(math.Round(value / maxValue * float64(l.plotHeight*8)))
	full, rest := eighths/8, eighths%8
	for row := 0; row < full; row++ {
		for col := 0; col < l.barWidth; col++ {
			screen.SetContent(x+col, bottom-row, fullBlock, nil, style)
		}
	}
	if rest > 0 && full < l.plotHeight {
		for col := 0; col < l.barWidth; col++ {
			screen.SetContent(x+col, bottom-full, partialBlocks[rest], nil, style)
		}
	}
}

func (c *BarChart) drawLabel(screen tcell.Screen, x, y, rows int, label string, color tcell.Color) {
	runes := []rune(label)
	if len(runes) > rows {
		runes = append(runes[:rows-1], '…')
	}
	style := tcell.StyleDefault.Foreground(color)
	for i, r := range runes {
		screen.SetContent(x, y+i, r, nil, style)
	}
}
