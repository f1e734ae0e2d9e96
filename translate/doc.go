// Package translate converts legacy-model camera settings into sparse
// framework-native request settings.
//
// A Translator is seeded from one framework template so that a freshly built
// request set is empty: every option the caller never touched stays at the
// template default and is left out of the produced collection entirely.
// Only deliberate deviations survive translation.
//
// Key pieces:
//   - Translator: embeds the legacy settings vocabulary, produces request sets
//   - RequestSettings: renders the current state, suppressing template defaults
//   - mode tables: the fixed legacy <-> framework mode correspondences
//   - region remapping: [-1000, 1000] normalized space onto the active array
package translate
