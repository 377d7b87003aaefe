// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

/*
Package recommend implements the agronomic recommendation engine.

Every computation is a pure function of one immutable dataset snapshot and
the caller's measurements:

  - CropMatcher votes among the 20 nearest crop observations (Euclidean
    distance over N, P, K, temperature, humidity, pH, rainfall) and returns
    up to three crop labels.
  - DeficitCalculator compares soil nutrients with the first nutrient profile
    of the requested crop and produces deficits and corrective advice.
  - DosageRecommender averages the fertilizer doses of the 5 historical
    plantings whose soil (pH, N, P, K) is closest to the query.
  - RegionalAnalyzer ranks regions by mean production, simulates ROI for a
    planting area and lists the known locations and commodities.

Distances are computed in raw feature units. Features are not normalized, so
large-valued features such as rainfall dominate the crop match; this mirrors
the reference behaviour and is kept deliberately.

Ties are always broken by dataset order: neighbour selection uses a stable
sort, and label votes tied on frequency keep the order in which the labels
first appear among the neighbours.

Absence of data is never an error. Operations return empty slices or a
false ok value when the dataset is empty or nothing matches.

Engine is the entry point for callers. Engine.Query pins the current
snapshot so that every operation of one request sees the same data, even if
a reload publishes a new snapshot concurrently.
*/
package recommend
