package output

import "github.com/jsphpl/redirect-mapper/internal/types"

func sampleRun() *types.Run {
	run := types.NewRun("old.txt", "new.txt", 3, 4, 0.05, false)
	run.Records = types.Slice([]types.Record{
		types.NewExactRecord(0, "/about"),
		{
			Index:        1,
			Source:       "/kitten",
			Match:        "/bitten",
			HasMatch:     true,
			Score:        0.92,
			Ambiguous:    true,
			Alternatives: []string{"/sitting", "/mitten"},
		},
		{
			Index:        2,
			Source:       "https://old.example.com/blog/hello",
			Match:        "https://new.example.com/news/hello",
			HasMatch:     true,
			Score:        0.81,
			Alternatives: []string{},
		},
	})
	return run
}
