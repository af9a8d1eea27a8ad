package filesystem

import (
	"github.com/brettbedarf/nautilus"
	"github.com/brettbedarf/nautilus/internal/util"
)

// ChangeReport lists what a chmod or chown touched. In recursive mode entries
// that fail their own checks are recorded in Skipped instead of aborting the
// operation.
type ChangeReport struct {
	Changed []Node
	Skipped []error
}

// targets returns node and, when recursive and node is a directory, all of its
// descendants in pre-order.
func targets(node Node, recursive bool) []Node {
	out := []Node{node}
	if dir, ok := node.(*Directory); ok && recursive {
		dir.Walk(func(n Node) {
			out = append(out, n)
		})
	}
	return out
}

// Chmod applies mode (see [ParseModeChange]) to the node at path. The actor must
// be root or the node's owner, and the node's parent and its ancestors must
// grant execute.
//
// With recursive every descendant of a directory target is included. All
// entries are checked against the tree as it was before the call; entries that
// fail are skipped and reported, the rest are changed.
func (s *Session) Chmod(mode, path string, recursive bool) (*ChangeReport, error) {
	const op = "chmod"
	logger := util.GetLogger("Chmod")

	change, err := ParseModeChange(mode)
	if err != nil {
		logger.Debug().Err(err).Msg("Rejected mode")
		return nil, &FSError{Code: CodeInvalidSyntax, Op: op, Path: path, Message: "Invalid mode"}
	}
	if err := validatePath(path); err != nil {
		return nil, withOp(op, err)
	}
	node, err := s.Resolve(path)
	if err != nil {
		return nil, withOp(op, err)
	}

	report := &ChangeReport{}
	approved := make([]Node, 0, 1)
	for _, n := range targets(node, recursive) {
		if err := s.checkChmod(op, n); err != nil {
			if !recursive {
				return nil, err
			}
			logger.Warn().Err(err).Str("path", n.Path()).Msg("Skipping entry")
			report.Skipped = append(report.Skipped, err)
			continue
		}
		approved = append(approved, n)
	}
	for _, n := range approved {
		e := n.base()
		e.mode = change.Apply(e.mode)
		report.Changed = append(report.Changed, n)
	}
	logger.Debug().
		Str("path", path).
		Str("mode", change.String()).
		Int("changed", len(report.Changed)).
		Int("skipped", len(report.Skipped)).
		Msg("Changed mode")
	return report, nil
}

func (s *Session) checkChmod(op string, n Node) error {
	if !s.IsRoot() && n.Owner() != s.User {
		return newError(op, CodeNotPermitted, n.Path())
	}
	return s.requireTraversable(op, n.Parent(), n.Path())
}

// Chown sets the owner of the node at path, and with recursive of every
// descendant of a directory target. Only root may change ownership and user
// must be a known account.
func (s *Session) Chown(user, path string, recursive bool) (*ChangeReport, error) {
	const op = "chown"
	logger := util.GetLogger("Chown")

	if !s.IsRoot() {
		return nil, newError(op, CodeNotPermitted, path)
	}
	if !s.knownUser(user) {
		return nil, &FSError{Code: CodeInvalidUser, Op: op, Path: path}
	}
	if err := validatePath(path); err != nil {
		return nil, withOp(op, err)
	}
	node, err := s.Resolve(path)
	if err != nil {
		return nil, withOp(op, err)
	}

	report := &ChangeReport{}
	for _, n := range targets(node, recursive) {
		n.base().owner = user
		report.Changed = append(report.Changed, n)
	}
	logger.Debug().Str("path", path).Str("owner", user).Int("changed", len(report.Changed)).Msg("Changed owner")
	return report, nil
}

func (s *Session) knownUser(user string) bool {
	if user == nautilus.RootUser {
		return true
	}
	return s.Users != nil && s.Users.Exists(user)
}
