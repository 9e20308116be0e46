/*
Package domain contains the node model of a decision tree.

It defines the three node variants, the errors shared by every layer, the
serializable traversal State and the observability hooks. It has no I/O.

# Node kinds

  - Question: each answer routes to its own next node.
  - FixedNextStateQuestion: always routes to one next node; answers (possibly
    several at once) only attach advisory copy.
  - Outcome: terminal, accepts no answers.

Node is a closed interface. Behavior that depends on the kind is written as a
type switch (see AnswerIDs, Successors, IsTerminal).
*/
package domain
