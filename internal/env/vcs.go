package env

import (
	"fmt"

	git "github.com/go-git/go-git/v6"
)

// Revision identifies the framework checkout.
type Revision struct {
	Ref  string // short reference name, e.g. "development"
	Hash string // full commit hash
}

func (r Revision) String() string {
	return fmt.Sprintf("%s @ %s", r.Ref, r.Hash)
}

// FrameworkRevision reports the checked-out HEAD of the framework repository.
func (e Env) FrameworkRevision() (Revision, error) {
	repo, err := git.PlainOpenWithOptions(e.FrameworkRoot, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Revision{}, fmt.Errorf("open framework repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return Revision{}, fmt.Errorf("read HEAD: %w", err)
	}

	return Revision{
		Ref:  head.Name().Short(),
		Hash: head.Hash().String(),
	}, nil
}
