// Package plotting renders scatter plots through a sidecar plotting service.
//
// Plots are described by the ScatterPlot type and rendered by a Renderer.
// The default renderer, ServiceRenderer, POSTs the plot as JSON to a sidecar
// plotting application and blocks until the sidecar accepts or rejects it.
//
// # Rendering a Plot
//
//	renderer := plotting.NewServiceRenderer(plotting.DefaultServiceConfig())
//	err := renderer.Render(&plotting.ScatterPlot{
//	    Title:  "citric acid vs. pH",
//	    XLabel: "citric acid",
//	    YLabel: "pH",
//	    Series: []plotting.Series{
//	        {Name: "Observed", Color: "blue", MarkerSize: 1, Opacity: 0.5, Points: points},
//	    },
//	    RefLines: []plotting.RefLine{{Y: 0, Color: "black", Width: 0.5}},
//	})
//
// Custom Renderer implementations can substitute the sidecar in tests or
// target a different backend.
package plotting
