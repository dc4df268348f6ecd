package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"copycat/internal/run"
	"copycat/internal/slipnet"
)

const barWidth = 40

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	answerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
)

// renderActivations prints a bar per active concept, most active first.
func renderActivations(net *slipnet.Slipnet) {
	nodes := make([]*slipnet.Node, 0, len(net.Nodes))
	for _, node := range net.Nodes {
		if node.Activation > 0 {
			nodes = append(nodes, node)
		}
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Activation != nodes[j].Activation {
			return nodes[i].Activation > nodes[j].Activation
		}
		return nodes[i].Name < nodes[j].Name
	})
	for _, node := range nodes {
		filled := int(node.Activation / 100.0 * barWidth)
		bar := barStyle.Render(strings.Repeat("█", filled)) +
			dimStyle.Render(strings.Repeat("░", barWidth-filled))
		fmt.Printf("%-28s %s %5.1f\n", node.Name, bar, node.Activation)
	}
}

// renderResult prints one problem's answer distribution.
func renderResult(result run.BatchResult) {
	p := result.Problem
	fmt.Printf("%s\n", headerStyle.Render(
		fmt.Sprintf("%s : %s :: %s : ?  (%d trials)", p.Initial, p.Modified, p.Target, p.Iterations)))
	for _, answer := range sortedAnswers(result.Counts) {
		fmt.Printf("  %-12s %4d  avg temperature %5.1f  avg ticks %6.1f\n",
			answerStyle.Render(answer), result.Counts[answer],
			result.AverageTemp[answer], result.AverageTicks[answer])
	}
	if result.Failures > 0 {
		fmt.Printf("  %s\n", dimStyle.Render(fmt.Sprintf("%d trials produced no answer", result.Failures)))
	}
	fmt.Println()
}
