package filesystem

import (
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// ExpandArguments converts command line path arguments into the list of paths
// to be queried. Each argument is normalized with Normalize. If glob is true,
// each normalized argument is treated as a doublestar pattern and replaced by
// its matches, in lexical order. Patterns without matches are reported as
// errors.
func ExpandArguments(arguments []string, glob bool) ([]string, error) {
	paths := make([]string, 0, len(arguments))
	for _, argument := range arguments {
		path, err := Normalize(argument)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to normalize %s", argument)
		}
		if !glob {
			paths = append(paths, path)
			continue
		}

		matches, err := doublestar.FilepathGlob(path)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to expand %s", argument)
		} else if len(matches) == 0 {
			return nil, errors.Errorf("no matches for %s", argument)
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}
