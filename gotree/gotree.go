// Package gotree builds and prints text trees.
package gotree

import "strings"

const (
	emptySpace   = "    "
	middleItem   = "├── "
	continueItem = "│   "
	lastItem     = "└── "
)

// Tree is a labelled node with ordered children.
type Tree interface {
	Add(text string) Tree
	AddTree(tree Tree)
	Items() []Tree
	Text() string
	Print() string
}

type tree struct {
	text  string
	items []Tree
}

func New(text string) Tree {
	return &tree{text: text}
}

// Add appends a new child and returns it.
func (t *tree) Add(text string) Tree {
	n := New(text)
	t.items = append(t.items, n)
	return n
}

func (t *tree) AddTree(tree Tree) {
	t.items = append(t.items, tree)
}

func (t *tree) Text() string {
	return t.text
}

func (t *tree) Items() []Tree {
	return t.items
}

// Print renders the tree, one line per node. Multi-line labels keep their
// continuation lines aligned under the branch.
func (t *tree) Print() string {
	var sb strings.Builder
	sb.WriteString(t.text)
	sb.WriteString("\n")
	printItems(&sb, t.items, "")
	return sb.String()
}

func printItems(sb *strings.Builder, items []Tree, indent string) {
	for i, item := range items {
		branch, cont := middleItem, continueItem
		if i == len(items)-1 {
			branch, cont = lastItem, emptySpace
		}
		for j, line := range strings.Split(item.Text(), "\n") {
			sb.WriteString(indent)
			if j == 0 {
				sb.WriteString(branch)
			} else {
				sb.WriteString(cont)
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		printItems(sb, item.Items(), indent+cont)
	}
}
