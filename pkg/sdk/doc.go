// Package kwfilter is an embeddable Go client for the keyword filter
// pipeline backed by Redis.
//
// Queries carry inline filters of the form +:keyword:X (require X) and
// -:keyword:X (exclude X). Filters sharing a feature are alternatives;
// distinct features must all hold.
//
//	client, _ := kwfilter.New(ctx,
//	    kwfilter.WithRedis("localhost:6379", ""),
//	    kwfilter.WithFeatureDetection([]string{"mit"}, []string{"txt", "pdf"}),
//	)
//	defer client.Close()
//
//	_, _ = client.Results().Put(ctx, kwfilter.Result{ID: "timon", DisplayName: "Timon of Athens"})
//	q, out, _ := client.Filters().Search(ctx, "timon +:keyword:mit -:keyword:pdf", 20)
//	fmt.Println(q.Terms, len(out.Accepted))
package kwfilter
