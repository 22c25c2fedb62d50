// Package meshkit is a numerical toolkit for two-dimensional meshes,
// periodic boxes, point statistics and topological defects.
//
// The subpackages can be used on their own:
//
//   - mesh: Linspace, Cartesian and polar meshes, Cartesian to polar conversion
//   - periodic: minimum-image distances, wrapping and phase unwrapping
//   - spatial: nearest-neighbour distances and the radial distribution function
//   - defect: synthetic defect fields and topological charge counting
//   - dataio: plain-text numeric tables on local disk or any blobstore.Store
//
// A Kit bundles them with structured logging, metrics, a bounded number of
// concurrent pairwise jobs and throttled table I/O.
//
// # Quick Start
//
//	kit := meshkit.New(
//	    meshkit.WithStore(blobstore.NewLocalStore("./runs")),
//	    meshkit.WithLogger(meshkit.NewTextLogger(slog.LevelInfo)),
//	)
//
//	x, y, err := kit.LoadXY(ctx, "positions.dat.zst")
//	nn, err := kit.NearestNeighbourDistance(ctx, x, y, 10)
//	rdf, err := kit.RadialDistributionFunction(ctx, x, y, 10, spatial.WithBins(200))
//	err = kit.SaveXY(ctx, "rdf.dat", rdf.R, rdf.G)
//
// Cloud mode:
//
//	store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("runs/"))
//	kit := meshkit.New(meshkit.WithStore(store))
//
// # Conventions
//
// Meshes use ndgrid ordering: X.At(i, j) = x_i and Y.At(i, j) = y_j.
// Angles are radians. Topological charges are counter-clockwise positive.
// Periodic boxes are square with side L and coordinates in [0, L).
//
// # Errors
//
// Argument errors satisfy errors.Is(err, ErrInvalidArgument); storage and
// parse errors satisfy errors.Is(err, ErrIO).
package meshkit
