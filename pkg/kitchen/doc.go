// Package kitchen implements the recipe-state and prediction engine.
//
// # Overview
//
// A recipe is a set of ingredients drawn from one category (fruit,
// vegetable, or a custom category). Each ingredient carries a scalar ratio
// in its category Catalog; a recipe's ratio is the mean of its members'
// ratios, zero when empty. The Engine keeps one current recipe per
// category, mutates it one ingredient at a time and predicts which
// extensions of it satisfy the configured bounds.
//
// # Usage
//
//	fruits, _ := kitchen.NewCatalog(map[string]float64{"apple": 2, "kiwi": 4, "lime": 20})
//	e := kitchen.NewEngine(kitchen.Config{
//	    MinRatio:       0,
//	    MaxRatio:       10,
//	    MinIngredients: 1,
//	    MaxIngredients: 2,
//	}, kitchen.WithCatalog(kitchen.CategoryFruit, fruits))
//
//	_ = e.AddIngredient(kitchen.CategoryFruit, "apple")
//	p, _ := e.Predict(kitchen.CategoryFruit)
//	for _, r := range p.Recipes {
//	    fmt.Println(r.Ingredients, r.Ratio)
//	}
//
// # Prediction
//
// Predict walks the subset lattice of the catalog rooted at the current
// recipe, depth-first with an explicit stack bounded by MaxIngredients.
// Nodes at the size ceiling are leaves kept iff their ratio is in range;
// nodes below it are kept iff they also reach MinIngredients, and are always
// extended. Results are unique by ingredient set (see Key). The search is
// exponential in MaxIngredients minus the current recipe size, which suits
// catalogs of tens of ingredients and small bound windows.
//
// # Errors
//
// Lookup and state failures are returned as *errors.StructuredError values
// matching ErrUnknownCategory, ErrUnknownIngredient, ErrAlreadyPresent and
// ErrNotPresent with errors.Is. A recipe member missing from its catalog
// during ratio recomputation is a contract violation and panics with a
// value matching ErrCatalogDesync.
//
// # Concurrency
//
// Engine performs no I/O and is not safe for concurrent use. Callers that
// share an engine across goroutines must serialize mutations, catalog
// reloads and Predict.
package kitchen
